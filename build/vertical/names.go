package vertical

import "strings"

// The "v" suffix element marks vertical forms. Suffix elements combine
// with underscores after the first dot: "A.salt_v" is the vertical form
// of "A.salt".

// VerticalName returns the glyph name with the "v" suffix element
// appended. Names already carrying it are returned unchanged.
func VerticalName(gname string) string {
	base, suffixes := splitSuffix(gname)
	for _, s := range suffixes {
		if s == "v" {
			return gname
		}
	}
	suffixes = append(suffixes, "v")
	return base + "." + strings.Join(suffixes, "_")
}

// HorizontalName returns the glyph name with the "v" suffix element
// stripped. Names without it are returned unchanged.
func HorizontalName(gname string) string {
	base, suffixes := splitSuffix(gname)
	for i, s := range suffixes {
		if s == "v" {
			suffixes = append(suffixes[:i], suffixes[i+1:]...)
			if len(suffixes) == 0 {
				return base
			}
			return base + "." + strings.Join(suffixes, "_")
		}
	}
	return gname
}

// SuffixElements returns the suffix elements of a glyph name:
// "A.salt_v" has elements ["salt", "v"], "A" has none.
func SuffixElements(gname string) []string {
	_, suffixes := splitSuffix(gname)
	return suffixes
}

// WithSuffixElements rebuilds a glyph name from its bare base and the
// given suffix elements.
func WithSuffixElements(gname string, suffixes []string) string {
	base, _ := splitSuffix(gname)
	if len(suffixes) == 0 {
		return base
	}
	return base + "." + strings.Join(suffixes, "_")
}

func splitSuffix(gname string) (string, []string) {
	if i := strings.IndexByte(gname, '.'); i >= 0 {
		return gname[:i], strings.Split(gname[i+1:], "_")
	}
	return gname, nil
}
