package voronoi

import (
	"iter"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/path"
)

// Render draws every Voronoi edge clipped to the box: the finite edges
// between adjacent circumcenters and the rays of the hull cells.
func (v *Voronoi) Render(ctx path.Context) {
	d := v.Delaunay
	if len(d.Hull) <= 1 {
		return
	}

	for i, j := range d.Halfedges {
		if j < i {
			continue
		}
		v.renderSegment(v.Circumcenters[i/3], v.Circumcenters[j/3], ctx)
	}

	h1 := d.Hull[len(d.Hull)-1]
	for _, h := range d.Hull {
		h0 := h1
		h1 = h
		c := v.Circumcenters[d.Inedges[h1]/3]
		if p, ok := v.project(c, v.Vectors[2*h0+1]); ok {
			v.renderSegment(c, p, ctx)
		}
	}
}

func (v *Voronoi) RenderString() string {
	p := path.New()
	v.Render(p)
	return p.String()
}

func (v *Voronoi) renderSegment(p0, p1 geom.Point, ctx path.Context) {
	c0 := v.regionCode(p0)
	c1 := v.regionCode(p1)
	if c0 == 0 && c1 == 0 {
		ctx.MoveTo(p0)
		ctx.LineTo(p1)
		return
	}
	if s0, s1, ok := v.clipSegment(p0, p1, c0, c1); ok {
		ctx.MoveTo(s0)
		ctx.LineTo(s1)
	}
}

func (v *Voronoi) RenderBounds(ctx path.Context) {
	ctx.Rect(geom.Point{X: v.Xl, Y: v.Yt}, v.Width(), v.Height())
}

func (v *Voronoi) RenderBoundsString() string {
	p := path.New()
	v.RenderBounds(p)
	return p.String()
}

// RenderCell draws the clipped cell of point i as a closed ring. Coincident
// points and cells outside the box draw nothing.
func (v *Voronoi) RenderCell(i int, ctx path.Context) {
	points := v.clip(i)
	if len(points) == 0 {
		return
	}

	ctx.MoveTo(points[0])
	n := len(points)
	for n > 1 && points[n-1] == points[0] {
		n--
	}
	for k := 1; k < n; k++ {
		if points[k] != points[k-1] {
			ctx.LineTo(points[k])
		}
	}
	ctx.ClosePath()
}

func (v *Voronoi) RenderCellString(i int) string {
	p := path.New()
	v.RenderCell(i, p)
	return p.String()
}

// CellPolygon returns the closed ring of cell i, nil if it is empty.
func (v *Voronoi) CellPolygon(i int) []geom.Point {
	p := path.NewPolygon()
	v.RenderCell(i, p)
	return p.Points()
}

// CellPolygons yields every non-empty cell ring with its point index.
func (v *Voronoi) CellPolygons() iter.Seq2[int, []geom.Point] {
	return func(yield func(int, []geom.Point) bool) {
		for i := range v.Delaunay.Points {
			cell := v.CellPolygon(i)
			if cell == nil {
				continue
			}
			if !yield(i, cell) {
				return
			}
		}
	}
}

// Contains reports whether p is in the cell of point i, i.e. whether i is
// the closest point to p.
func (v *Voronoi) Contains(i int, p geom.Point) bool {
	if p.IsNaN() {
		return false
	}
	return v.Delaunay.Step(i, p) == i
}

// Neighbors yields the Delaunay neighbors of i whose clipped cells share an
// edge with the clipped cell of i.
func (v *Voronoi) Neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		ci := v.clip(i)
		if ci == nil {
			return
		}
		for j := range v.Delaunay.Neighbors(i) {
			cj := v.clip(j)
			if cj != nil && sharesEdge(ci, cj) && !yield(j) {
				return
			}
		}
	}
}

// sharesEdge reports whether ring a has an edge that ring b traverses in the
// opposite direction.
func sharesEdge(a, b []geom.Point) bool {
	la, lb := len(a), len(b)
	for ai := range a {
		for bj := range b {
			if a[ai] == b[bj] && a[(ai+1)%la] == b[(bj+lb-1)%lb] {
				return true
			}
		}
	}
	return false
}
