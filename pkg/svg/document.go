// Package svg writes rendered meshes as SVG documents and reads point sets
// back out of SVG files.
package svg

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
)

// Style is applied to a single element. Empty fields are omitted.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

func (s Style) attrs() string {
	var sb strings.Builder
	fill := s.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&sb, ` fill="%s"`, html.EscapeString(fill))
	if s.Stroke != "" {
		fmt.Fprintf(&sb, ` stroke="%s"`, html.EscapeString(s.Stroke))
	}
	if s.StrokeWidth > 0 {
		fmt.Fprintf(&sb, ` stroke-width="%g"`, s.StrokeWidth)
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		fmt.Fprintf(&sb, ` opacity="%g"`, s.Opacity)
	}
	return sb.String()
}

type element struct {
	name  string
	attrs string
	style Style
}

// Document is an SVG image with a viewBox of the given size.
type Document struct {
	Width, Height float64
	Background    string

	elements []element
}

func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// AddPath appends a <path> with the given path data. Empty data is skipped.
func (d *Document) AddPath(data string, style Style) {
	if data == "" {
		return
	}
	d.elements = append(d.elements, element{
		name:  "path",
		attrs: fmt.Sprintf(` d="%s"`, data),
		style: style,
	})
}

func (d *Document) AddCircle(c geom.Point, r float64, style Style) {
	d.elements = append(d.elements, element{
		name:  "circle",
		attrs: fmt.Sprintf(` cx="%g" cy="%g" r="%g"`, c.X, c.Y, r),
		style: style,
	})
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`,
		d.Width, d.Height, d.Width, d.Height)
	sb.WriteByte('\n')
	if d.Background != "" {
		fmt.Fprintf(&sb, `  <rect width="100%%" height="100%%" fill="%s"/>`, html.EscapeString(d.Background))
		sb.WriteByte('\n')
	}
	for _, el := range d.elements {
		fmt.Fprintf(&sb, "  <%s%s%s/>\n", el.name, el.attrs, el.style.attrs())
	}
	sb.WriteString("</svg>\n")

	n, err := io.WriteString(w, sb.String())
	if err != nil {
		return int64(n), errors.Wrap(err, "write svg")
	}
	return int64(n), nil
}
