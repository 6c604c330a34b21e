package delaunay

import (
	"iter"
	"slices"

	"github.com/0x0FACED/go-delaunay/pkg/delaunator"
)

// Find returns the index of the point closest to p, walking from point 0.
func (d *Delaunay) Find(p Point) int {
	return d.FindFrom(p, 0)
}

// FindFrom returns the index of the point closest to p, walking the
// triangulation from point i. Passing the previous result as i makes
// queries for nearby positions cheap. NaN positions give Empty.
func (d *Delaunay) FindFrom(p Point, i int) int {
	if p.IsNaN() {
		return Empty
	}

	i0 := i
	c := d.Step(i, p)
	for c >= 0 && c != i && c != i0 {
		i = c
		c = d.Step(i, p)
	}
	return c
}

// Step returns the neighbor of i closest to p, or i itself when no neighbor
// is closer. Points without an incoming half-edge hand over to the next
// index.
func (d *Delaunay) Step(i int, p Point) int {
	n := len(d.Points)
	if n == 0 || i < 0 || i >= n {
		return Empty
	}
	if d.Inedges[i] == Empty {
		return (i + 1) % n
	}

	c := i
	dc := p.Dist2(d.Points[i])
	e0 := d.Inedges[i]
	e := e0
	for {
		t := d.Triangles[e]
		if t != Empty {
			if dt := p.Dist2(d.Points[t]); dt < dc {
				dc, c = dt, t
			}
		}

		e = delaunator.NextHalfedge(e)
		if d.Triangles[e] != i {
			// bad triangulation
			break
		}

		e = d.Halfedges[e]
		if e == Empty {
			// the closest point may be across the hull
			h := d.Hull[(d.hullIndex[i]+1)%len(d.Hull)]
			if h != t && p.Dist2(d.Points[h]) < dc {
				return h
			}
			break
		}
		if e == e0 {
			break
		}
	}
	return c
}

// Neighbors yields the points sharing an edge with point i. The sequence is
// computed on each iteration.
func (d *Delaunay) Neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if d.collinear != nil {
			l := slices.Index(d.collinear, i)
			if l > 0 && !yield(d.collinear[l-1]) {
				return
			}
			if l >= 0 && l < len(d.collinear)-1 {
				yield(d.collinear[l+1])
			}
			return
		}

		if i < 0 || i >= len(d.Inedges) {
			return
		}
		e0 := d.Inedges[i]
		if e0 == Empty {
			return
		}

		e := e0
		for {
			p0 := d.Triangles[e]
			if p0 != Empty && !yield(p0) {
				return
			}

			e = delaunator.NextHalfedge(e)
			if d.Triangles[e] != i {
				return
			}

			e = d.Halfedges[e]
			if e == Empty {
				p := d.Hull[(d.hullIndex[i]+1)%len(d.Hull)]
				if p != p0 {
					yield(p)
				}
				return
			}
			if e == e0 {
				return
			}
		}
	}
}
