// Package path holds the drawing surfaces the triangulation and the diagram
// render into: an SVG path-data accumulator, a polygon accumulator and a
// gg canvas adapter.
package path

import (
	"math"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Context is the drawing surface the renderers write into.
type Context interface {
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
	ClosePath()
	Arc(p geom.Point, r, start, stop float64)
	Rect(p geom.Point, w, h float64)
}

const epsilon = 1e-6

// Path accumulates SVG path data. The zero value is ready to use.
type Path struct {
	sb strings.Builder

	// start of the current subpath and current point
	p0, p1 geom.Point
	// set once anything has been drawn
	started bool
}

func New() *Path {
	return &Path{}
}

func (p *Path) MoveTo(pt geom.Point) {
	p.p0, p.p1 = pt, pt
	p.started = true
	p.sb.WriteByte('M')
	p.point(pt)
}

func (p *Path) LineTo(pt geom.Point) {
	p.p1 = pt
	p.started = true
	p.sb.WriteByte('L')
	p.point(pt)
}

func (p *Path) ClosePath() {
	if !p.started {
		return
	}
	p.p1 = p.p0
	p.sb.WriteByte('Z')
}

// Arc draws a full circle of radius r around c, starting at (c.X+r, c.Y).
// The angles are accepted for interface compatibility; only full circles are
// drawn. A negative radius draws nothing.
func (p *Path) Arc(c geom.Point, r, start, stop float64) {
	if r < 0 {
		return
	}

	p0 := geom.Point{X: c.X + r, Y: c.Y}
	if !p.started {
		p.sb.WriteByte('M')
		p.point(p0)
	} else if math.Abs(p.p1.X-p0.X) > epsilon || math.Abs(p.p1.Y-p0.Y) > epsilon {
		p.sb.WriteByte('L')
		p.point(p0)
	}
	p.started = true
	if r == 0 {
		p.p1 = p0
		return
	}

	p.sb.WriteByte('A')
	p.arcTo(r, geom.Point{X: c.X - r, Y: c.Y})
	p.sb.WriteByte('A')
	p.arcTo(r, p0)
	p.p1 = p0
}

func (p *Path) Rect(pt geom.Point, w, h float64) {
	p.p0, p.p1 = pt, pt
	p.started = true

	p.sb.WriteByte('M')
	p.point(pt)
	p.sb.WriteByte('h')
	p.sb.WriteString(formatFloat(w))
	p.sb.WriteByte('v')
	p.sb.WriteString(formatFloat(h))
	p.sb.WriteByte('h')
	p.sb.WriteString(formatFloat(-w))
	p.sb.WriteByte('Z')
}

// String returns the path data, empty if nothing was drawn.
func (p *Path) String() string {
	return p.sb.String()
}

func (p *Path) arcTo(r float64, to geom.Point) {
	rs := formatFloat(r)
	p.sb.WriteString(rs)
	p.sb.WriteByte(',')
	p.sb.WriteString(rs)
	p.sb.WriteString(",0,1,1,")
	p.point(to)
}

func (p *Path) point(pt geom.Point) {
	p.sb.WriteString(formatFloat(pt.X))
	p.sb.WriteByte(',')
	p.sb.WriteString(formatFloat(pt.Y))
}

// formatFloat prints the shortest representation that round-trips, with
// negative zero printed as 0.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
