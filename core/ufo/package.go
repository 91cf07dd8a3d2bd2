package ufo

import (
	"os"
	"path/filepath"

	"github.com/glyphworks/strata/core"
	"howett.net/plist"
)

// UFO package reader/writer. All property lists go through howett.net/plist;
// glyph outlines through the GLIF codec in glif.go.

type metaInfo struct {
	Creator       string `plist:"creator"`
	FormatVersion int    `plist:"formatVersion"`
}

const packageCreator = "com.glyphworks.strata"

// Open reads a UFO package from disk. UFO 2 packages (no
// layercontents.plist) load with their single glyphs directory as the
// default layer.
func Open(path string) (*Font, error) {
	tracer().Debugf("opening UFO package %s", path)
	f := &Font{
		Path:    path,
		Lib:     make(map[string]interface{}),
		Groups:  make(map[string][]string),
		Kerning: make(map[Pair]int),
	}

	var meta metaInfo
	if err := readPlist(filepath.Join(path, "metainfo.plist"), &meta); err != nil {
		return nil, core.WrapError(err, core.EMISSING, "%s is not a UFO package", path)
	}
	if meta.FormatVersion < 2 || meta.FormatVersion > 3 {
		return nil, core.Error(core.EINVALID, "unsupported UFO format version %d", meta.FormatVersion)
	}

	var info map[string]interface{}
	if err := readPlist(filepath.Join(path, "fontinfo.plist"), &info); err == nil {
		f.Info = infoFromDict(info)
	}
	readPlist(filepath.Join(path, "lib.plist"), &f.Lib) //nolint:errcheck // optional file
	var groups map[string][]string
	if err := readPlist(filepath.Join(path, "groups.plist"), &groups); err == nil {
		f.Groups = groups
	}
	var kerning map[string]map[string]int
	if err := readPlist(filepath.Join(path, "kerning.plist"), &kerning); err == nil {
		for left, row := range kerning {
			for right, value := range row {
				f.Kerning[Pair{left, right}] = value
			}
		}
	}

	layers := [][]string{{DefaultLayerName, "glyphs"}}
	var contents [][]string
	if err := readPlist(filepath.Join(path, "layercontents.plist"), &contents); err == nil && len(contents) > 0 {
		layers = contents
	}
	for i, entry := range layers {
		if len(entry) != 2 {
			return nil, core.Error(core.EINVALID, "bad layercontents entry in %s", path)
		}
		name, dir := entry[0], entry[1]
		if i == 0 || name == "public.default" {
			name = DefaultLayerName
		}
		layer := newLayer(f, name, dir)
		if err := readLayer(layer, filepath.Join(path, dir)); err != nil {
			return nil, err
		}
		if i == 0 {
			f.layers = []*Layer{layer}
		} else {
			f.layers = append(f.layers, layer)
		}
	}
	tracer().Infof("opened %s %s: %d glyphs, %d layers",
		f.Info.FamilyName, f.Info.StyleName, f.Default().Len(), len(f.layers))
	return f, nil
}

func readLayer(layer *Layer, dir string) error {
	var contents map[string]string
	if err := readPlist(filepath.Join(dir, "contents.plist"), &contents); err != nil {
		return core.WrapError(err, core.EMISSING, "layer %q has no contents.plist", layer.Name)
	}
	for name, file := range contents {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return core.WrapError(err, core.EIO, "cannot read glyph file %s", file)
		}
		g, err := ParseGlif(data)
		if err != nil {
			return err
		}
		if g.Name != name {
			tracer().Infof("glyph file %s says %q, contents.plist says %q", file, g.Name, name)
			g.Name = name
		}
		layer.Insert(g)
	}
	return nil
}

// Save writes the font as a UFO 3 package at path (or at f.Path when
// path is empty). The target directory is created; stale glyph files
// from earlier saves are removed.
func (f *Font) Save(path string) error {
	if path == "" {
		path = f.Path
	}
	if path == "" {
		return core.Error(core.EINVALID, "font has no path to save to")
	}
	tracer().Debugf("saving UFO package %s", path)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return core.WrapError(err, core.EIO, "cannot create %s", path)
	}
	if err := writePlist(filepath.Join(path, "metainfo.plist"),
		metaInfo{Creator: packageCreator, FormatVersion: 3}); err != nil {
		return err
	}
	if err := writePlist(filepath.Join(path, "fontinfo.plist"), f.Info.toDict()); err != nil {
		return err
	}
	if len(f.Lib) > 0 {
		if err := writePlist(filepath.Join(path, "lib.plist"), f.Lib); err != nil {
			return err
		}
	}
	if len(f.Groups) > 0 {
		if err := writePlist(filepath.Join(path, "groups.plist"), f.Groups); err != nil {
			return err
		}
	}
	if len(f.Kerning) > 0 {
		kerning := make(map[string]map[string]int)
		for pair, value := range f.Kerning {
			row, ok := kerning[pair.Left]
			if !ok {
				row = make(map[string]int)
				kerning[pair.Left] = row
			}
			row[pair.Right] = value
		}
		if err := writePlist(filepath.Join(path, "kerning.plist"), kerning); err != nil {
			return err
		}
	}

	contents := make([][]string, 0, len(f.layers))
	for i, layer := range f.layers {
		name := layer.Name
		if i == 0 {
			name = "public.default"
		}
		dir := layerDirName(layer.Name)
		contents = append(contents, []string{name, dir})
		if err := writeLayer(layer, filepath.Join(path, dir)); err != nil {
			return err
		}
	}
	if err := writePlist(filepath.Join(path, "layercontents.plist"), contents); err != nil {
		return err
	}
	f.Path = path
	return nil
}

func writeLayer(layer *Layer, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return core.WrapError(err, core.EIO, "cannot create %s", dir)
	}
	old, _ := os.ReadDir(dir)
	contents := make(map[string]string, len(layer.glyphs))
	for _, name := range layer.Names() {
		file := glifFileName(name)
		contents[name] = file
		data, err := WriteGlif(layer.glyphs[name])
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, file), data, 0o644); err != nil {
			return core.WrapError(err, core.EIO, "cannot write glyph file %s", file)
		}
	}
	// drop glif files of glyphs no longer present
	current := make(map[string]bool, len(contents))
	for _, file := range contents {
		current[file] = true
	}
	for _, entry := range old {
		if filepath.Ext(entry.Name()) == ".glif" && !current[entry.Name()] {
			os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
	return writePlist(filepath.Join(dir, "contents.plist"), contents)
}

func readPlist(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := plist.Unmarshal(data, v); err != nil {
		return core.WrapError(err, core.EINVALID, "malformed property list %s", filepath.Base(path))
	}
	return nil
}

func writePlist(path string, v interface{}) error {
	data, err := plist.MarshalIndent(v, plist.XMLFormat, "\t")
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return core.WrapError(err, core.EIO, "cannot write %s", filepath.Base(path))
	}
	return nil
}

// --- fontinfo mapping ------------------------------------------------------

func infoFromDict(d map[string]interface{}) Info {
	info := Info{rest: d}
	info.FamilyName = popString(d, "familyName")
	info.StyleName = popString(d, "styleName")
	info.UnitsPerEm = popInt(d, "unitsPerEm")
	info.Ascender = popInt(d, "ascender")
	info.Descender = popInt(d, "descender")
	info.CapHeight = popInt(d, "capHeight")
	info.XHeight = popInt(d, "xHeight")
	return info
}

func (info Info) toDict() map[string]interface{} {
	d := make(map[string]interface{}, len(info.rest)+7)
	for k, v := range info.rest {
		d[k] = v
	}
	putNonEmpty(d, "familyName", info.FamilyName)
	putNonEmpty(d, "styleName", info.StyleName)
	putNonZero(d, "unitsPerEm", info.UnitsPerEm)
	putNonZero(d, "ascender", info.Ascender)
	putNonZero(d, "descender", info.Descender)
	putNonZero(d, "capHeight", info.CapHeight)
	putNonZero(d, "xHeight", info.XHeight)
	return d
}

func popString(d map[string]interface{}, key string) string {
	if v, ok := d[key]; ok {
		delete(d, key)
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func popInt(d map[string]interface{}, key string) int {
	if v, ok := d[key]; ok {
		delete(d, key)
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case uint64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

func putNonEmpty(d map[string]interface{}, key, value string) {
	if value != "" {
		d[key] = value
	}
}

func putNonZero(d map[string]interface{}, key string, value int) {
	if value != 0 {
		d[key] = value
	}
}
