package delaunay

import (
	"iter"
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/path"
)

// DefaultPointRadius is used by RenderPoints for non-positive radii.
const DefaultPointRadius = 2

// Render draws every edge of the triangulation once, followed by the hull.
func (d *Delaunay) Render(ctx path.Context) {
	for i, j := range d.Halfedges {
		if j < i {
			continue
		}
		ctx.MoveTo(d.Points[d.Triangles[i]])
		ctx.LineTo(d.Points[d.Triangles[j]])
	}
	d.RenderHull(ctx)
}

func (d *Delaunay) RenderString() string {
	p := path.New()
	d.Render(p)
	return p.String()
}

// RenderPoints draws a circle of radius r around every point.
func (d *Delaunay) RenderPoints(ctx path.Context, r float64) {
	if r <= 0 {
		r = DefaultPointRadius
	}
	for _, p := range d.Points {
		ctx.MoveTo(Point{X: p.X + r, Y: p.Y})
		ctx.Arc(p, r, 0, 2*math.Pi)
	}
}

func (d *Delaunay) RenderPointsString(r float64) string {
	p := path.New()
	d.RenderPoints(p, r)
	return p.String()
}

func (d *Delaunay) RenderHull(ctx path.Context) {
	if len(d.Hull) == 0 {
		return
	}
	ctx.MoveTo(d.Points[d.Hull[0]])
	for _, h := range d.Hull[1:] {
		ctx.LineTo(d.Points[h])
	}
	ctx.ClosePath()
}

func (d *Delaunay) RenderHullString() string {
	p := path.New()
	d.RenderHull(p)
	return p.String()
}

// HullPolygon returns the closed hull ring.
func (d *Delaunay) HullPolygon() []Point {
	p := path.NewPolygon()
	d.RenderHull(p)
	return p.Points()
}

// RenderTriangle draws triangle i. Placeholder triangles of degenerate inputs
// are drawn through their valid vertices only.
func (d *Delaunay) RenderTriangle(i int, ctx path.Context) {
	if i < 0 || 3*i+2 >= len(d.Triangles) {
		return
	}
	first := true
	for _, t := range d.Triangles[3*i : 3*i+3] {
		if t == Empty {
			continue
		}
		if first {
			ctx.MoveTo(d.Points[t])
			first = false
		} else {
			ctx.LineTo(d.Points[t])
		}
	}
	ctx.ClosePath()
}

func (d *Delaunay) RenderTriangleString(i int) string {
	p := path.New()
	d.RenderTriangle(i, p)
	return p.String()
}

// TrianglePolygon returns the closed ring of triangle i.
func (d *Delaunay) TrianglePolygon(i int) []Point {
	p := path.NewPolygon()
	d.RenderTriangle(i, p)
	return p.Points()
}

// TrianglePolygons yields the ring of every triangle with its index.
func (d *Delaunay) TrianglePolygons() iter.Seq2[int, []Point] {
	return func(yield func(int, []Point) bool) {
		for i := 0; i < len(d.Triangles)/3; i++ {
			if !yield(i, d.TrianglePolygon(i)) {
				return
			}
		}
	}
}
