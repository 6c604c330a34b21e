package path

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/fogleman/gg"
)

// Canvas forwards drawing calls to a gg context. Stroking and filling stay
// with the caller, so one render call can be styled freely:
//
//	c := path.NewCanvas(gg.NewContext(w, h))
//	d.Render(c)
//	c.Stroke()
type Canvas struct {
	*gg.Context
}

func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{Context: dc}
}

func (c *Canvas) MoveTo(p geom.Point) {
	c.Context.MoveTo(p.X, p.Y)
}

func (c *Canvas) LineTo(p geom.Point) {
	c.Context.LineTo(p.X, p.Y)
}

func (c *Canvas) ClosePath() {
	c.Context.ClosePath()
}

func (c *Canvas) Arc(p geom.Point, r, start, stop float64) {
	if r <= 0 {
		return
	}
	// a fresh subpath keeps gg from joining consecutive circles with a line
	c.Context.NewSubPath()
	c.Context.DrawArc(p.X, p.Y, r, start, stop)
	c.Context.ClosePath()
}

func (c *Canvas) Rect(p geom.Point, w, h float64) {
	c.Context.DrawRectangle(p.X, p.Y, w, h)
}
