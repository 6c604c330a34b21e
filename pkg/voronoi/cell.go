package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/delaunator"
	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// cell returns the Voronoi vertices around point i in rotation order,
// unclipped. ok is false for coincident points, which own no cell.
func (v *Voronoi) cell(i int) (points []geom.Point, ok bool) {
	d := v.Delaunay
	if i < 0 || i >= len(d.Inedges) {
		return nil, false
	}
	e0 := d.Inedges[i]
	if e0 == delaunay.Empty {
		return nil, false
	}

	e := e0
	for {
		points = append(points, v.Circumcenters[e/3])

		e = delaunator.NextHalfedge(e)
		if d.Triangles[e] != i {
			// bad triangulation
			break
		}
		e = d.Halfedges[e]
		if e == e0 || e == delaunay.Empty {
			break
		}
	}
	return points, true
}

// clip returns the ring of cell i clipped to the bounding box, without the
// closing point. nil means the cell is empty.
func (v *Voronoi) clip(i int) []geom.Point {
	// a single distinct point owns the whole box
	if i == 0 && len(v.Delaunay.Hull) == 1 {
		return v.ring()
	}

	points, ok := v.cell(i)
	if !ok {
		return nil
	}

	in, out := v.Vectors[2*i], v.Vectors[2*i+1]
	if in.X != 0 || in.Y != 0 {
		return simplify(v.clipInfinite(i, points, in, out))
	}
	return simplify(v.clipFinite(i, points))
}

// simplify drops the middle one of three consecutive points sharing an x or
// a y coordinate, including across the end of the ring.
func simplify(points []geom.Point) []geom.Point {
	if len(points) <= 2 {
		return points
	}
	for i := 0; i < len(points); i++ {
		j := (i + 1) % len(points)
		k := (i + 2) % len(points)
		if points[i].X == points[j].X && points[j].X == points[k].X ||
			points[i].Y == points[j].Y && points[j].Y == points[k].Y {
			points = append(points[:j], points[j+1:]...)
			i--
		}
	}
	if len(points) == 0 {
		return nil
	}
	return points
}
