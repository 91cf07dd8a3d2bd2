package ufo

import "strings"

// glifFileName converts a glyph name to a GLIF file name following the
// UFO conventions: uppercase letters get an underscore appended, a
// leading dot becomes an underscore, and characters that are unsafe on
// common file systems are replaced.
func glifFileName(glyphName string) string {
	var b strings.Builder
	for i, r := range glyphName {
		switch {
		case r == '.' && i == 0:
			b.WriteByte('_')
		case strings.ContainsRune(`"*+/:<>?[\]|`, r) || r < 0x20 || r == 0x7F:
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	name := b.String()
	if len(name) > 250 {
		name = name[:250]
	}
	return name + ".glif"
}

// layerDirName converts a layer name to its directory name.
func layerDirName(layerName string) string {
	if layerName == DefaultLayerName || layerName == "public.default" {
		return "glyphs"
	}
	return "glyphs." + layerName
}
