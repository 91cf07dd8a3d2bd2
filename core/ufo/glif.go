package ufo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/glyphworks/strata/core"
)

// GLIF 2 codec (encoding/xml). The <lib> element is preserved verbatim,
// since glyph libs are free-form property lists the tools never touch.

type glifXML struct {
	XMLName  xml.Name     `xml:"glyph"`
	Name     string       `xml:"name,attr"`
	Format   int          `xml:"format,attr"`
	Advance  *advanceXML  `xml:"advance"`
	Unicodes []unicodeXML `xml:"unicode"`
	Outline  *outlineXML  `xml:"outline"`
	Anchors  []anchorXML  `xml:"anchor"`
	Note     string       `xml:"note,omitempty"`
	Lib      *libXML      `xml:"lib"`
}

type advanceXML struct {
	Width  float64 `xml:"width,attr,omitempty"`
	Height float64 `xml:"height,attr,omitempty"`
}

type unicodeXML struct {
	Hex string `xml:"hex,attr"`
}

type outlineXML struct {
	Elements []outlineElemXML `xml:",any"`
}

type outlineElemXML struct {
	XMLName xml.Name
	// component attributes
	Base    string   `xml:"base,attr,omitempty"`
	XScale  *float64 `xml:"xScale,attr"`
	XYScale *float64 `xml:"xyScale,attr"`
	YXScale *float64 `xml:"yxScale,attr"`
	YScale  *float64 `xml:"yScale,attr"`
	XOffset float64  `xml:"xOffset,attr,omitempty"`
	YOffset float64  `xml:"yOffset,attr,omitempty"`
	// contour content
	Points []pointXML `xml:"point"`
}

type pointXML struct {
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Type   string  `xml:"type,attr,omitempty"`
	Smooth string  `xml:"smooth,attr,omitempty"`
	Name   string  `xml:"name,attr,omitempty"`
}

type anchorXML struct {
	X    float64 `xml:"x,attr"`
	Y    float64 `xml:"y,attr"`
	Name string  `xml:"name,attr,omitempty"`
}

type libXML struct {
	Inner []byte `xml:",innerxml"`
}

// ParseGlif decodes a GLIF document into a detached glyph.
func ParseGlif(data []byte) (*Glyph, error) {
	var doc glifXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "malformed GLIF")
	}
	if doc.Name == "" {
		return nil, core.Error(core.EINVALID, "GLIF without glyph name")
	}
	g := &Glyph{Name: doc.Name}
	if doc.Advance != nil {
		g.Width = doc.Advance.Width
		g.Height = doc.Advance.Height
	}
	for _, u := range doc.Unicodes {
		v, err := strconv.ParseUint(strings.TrimSpace(u.Hex), 16, 32)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "glyph %s: bad unicode value %q", doc.Name, u.Hex)
		}
		g.Unicodes = append(g.Unicodes, rune(v))
	}
	if doc.Outline != nil {
		for _, elem := range doc.Outline.Elements {
			switch elem.XMLName.Local {
			case "component":
				comp := &Component{
					Base:    elem.Base,
					XScale:  1,
					YScale:  1,
					XOffset: elem.XOffset,
					YOffset: elem.YOffset,
				}
				if elem.XScale != nil {
					comp.XScale = *elem.XScale
				}
				if elem.XYScale != nil {
					comp.XYScale = *elem.XYScale
				}
				if elem.YXScale != nil {
					comp.YXScale = *elem.YXScale
				}
				if elem.YScale != nil {
					comp.YScale = *elem.YScale
				}
				g.Components = append(g.Components, comp)
			case "contour":
				contour := &Contour{}
				for _, pt := range elem.Points {
					p := Point{X: pt.X, Y: pt.Y, Name: pt.Name}
					switch pt.Type {
					case "":
						p.Type = OffCurve
					case "move":
						p.Type = Move
					case "line":
						p.Type = Line
					case "curve":
						p.Type = Curve
					case "qcurve":
						p.Type = QCurve
					default:
						return nil, core.Error(core.EINVALID, "glyph %s: unknown point type %q", doc.Name, pt.Type)
					}
					p.Smooth = pt.Smooth == "yes"
					contour.Points = append(contour.Points, p)
				}
				g.Contours = append(g.Contours, contour)
			}
		}
	}
	for _, a := range doc.Anchors {
		g.Anchors = append(g.Anchors, &Anchor{X: a.X, Y: a.Y, Name: a.Name})
	}
	if doc.Lib != nil {
		lib := bytes.TrimSpace(doc.Lib.Inner)
		if m := parseMarkColor(lib); m != nil {
			g.Mark = m
		}
		g.Lib = append([]byte(nil), doc.Lib.Inner...)
	}
	return g, nil
}

// WriteGlif encodes the glyph as a GLIF 2 document.
func WriteGlif(g *Glyph) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	fmt.Fprintf(&buf, "<glyph name=%q format=\"2\">\n", g.Name)
	if g.Width != 0 || g.Height != 0 {
		buf.WriteString("  <advance")
		if g.Width != 0 {
			fmt.Fprintf(&buf, " width=%q", fmtNum(g.Width))
		}
		if g.Height != 0 {
			fmt.Fprintf(&buf, " height=%q", fmtNum(g.Height))
		}
		buf.WriteString("/>\n")
	}
	for _, u := range g.Unicodes {
		fmt.Fprintf(&buf, "  <unicode hex=\"%04X\"/>\n", u)
	}
	if len(g.Contours) > 0 || len(g.Components) > 0 {
		buf.WriteString("  <outline>\n")
		for _, comp := range g.Components {
			writeComponent(&buf, comp)
		}
		for _, contour := range g.Contours {
			buf.WriteString("    <contour>\n")
			for _, p := range contour.Points {
				fmt.Fprintf(&buf, "      <point x=%q y=%q", fmtNum(p.X), fmtNum(p.Y))
				if p.Type != OffCurve {
					fmt.Fprintf(&buf, " type=%q", p.Type.String())
				}
				if p.Smooth {
					buf.WriteString(` smooth="yes"`)
				}
				if p.Name != "" {
					fmt.Fprintf(&buf, " name=%q", p.Name)
				}
				buf.WriteString("/>\n")
			}
			buf.WriteString("    </contour>\n")
		}
		buf.WriteString("  </outline>\n")
	}
	for _, a := range g.Anchors {
		fmt.Fprintf(&buf, "  <anchor x=%q y=%q", fmtNum(a.X), fmtNum(a.Y))
		if a.Name != "" {
			fmt.Fprintf(&buf, " name=%q", a.Name)
		}
		buf.WriteString("/>\n")
	}
	if lib := g.libXML(); lib != nil {
		buf.WriteString("  <lib>\n")
		buf.Write(lib)
		buf.WriteString("\n  </lib>\n")
	}
	buf.WriteString("</glyph>\n")
	return buf.Bytes(), nil
}

// libXML returns the raw lib contents to persist, synthesizing a mark
// color entry when the glyph carries one but the stored lib does not.
func (g *Glyph) libXML() []byte {
	if g.Mark != nil && !bytes.Contains(g.Lib, []byte(markColorKey)) {
		var buf bytes.Buffer
		if len(bytes.TrimSpace(g.Lib)) > 0 {
			buf.Write(g.Lib)
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "    <dict>\n      <key>%s</key>\n      <string>%s,%s,%s,%s</string>\n    </dict>",
			markColorKey, fmtNum(g.Mark.R), fmtNum(g.Mark.G), fmtNum(g.Mark.B), fmtNum(g.Mark.A))
		return buf.Bytes()
	}
	if len(bytes.TrimSpace(g.Lib)) == 0 {
		return nil
	}
	return g.Lib
}

const markColorKey = "public.markColor"

// parseMarkColor digs a mark color out of a raw glyph lib, if present.
// The lib is not interpreted beyond that single well-known key.
func parseMarkColor(lib []byte) *Color {
	idx := bytes.Index(lib, []byte("<key>"+markColorKey+"</key>"))
	if idx < 0 {
		return nil
	}
	rest := lib[idx:]
	open := bytes.Index(rest, []byte("<string>"))
	end := bytes.Index(rest, []byte("</string>"))
	if open < 0 || end < 0 || end < open {
		return nil
	}
	parts := strings.Split(string(rest[open+len("<string>"):end]), ",")
	if len(parts) != 4 {
		return nil
	}
	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		vals[i] = v
	}
	return &Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}
}

func writeComponent(buf *bytes.Buffer, comp *Component) {
	fmt.Fprintf(buf, "    <component base=%q", comp.Base)
	xx, xy, yx, yy := comp.matrix()
	if xx != 1 {
		fmt.Fprintf(buf, " xScale=%q", fmtNum(xx))
	}
	if xy != 0 {
		fmt.Fprintf(buf, " xyScale=%q", fmtNum(xy))
	}
	if yx != 0 {
		fmt.Fprintf(buf, " yxScale=%q", fmtNum(yx))
	}
	if yy != 1 {
		fmt.Fprintf(buf, " yScale=%q", fmtNum(yy))
	}
	if comp.XOffset != 0 {
		fmt.Fprintf(buf, " xOffset=%q", fmtNum(comp.XOffset))
	}
	if comp.YOffset != 0 {
		fmt.Fprintf(buf, " yOffset=%q", fmtNum(comp.YOffset))
	}
	buf.WriteString("/>\n")
}

// fmtNum prints integers without a decimal point, like the editors do.
func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
