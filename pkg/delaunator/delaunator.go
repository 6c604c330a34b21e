// Package delaunator computes a Delaunay triangulation of a planar point set
// with the sweep-hull algorithm. The result is a flat half-edge structure:
// triangle t owns the half-edges 3t, 3t+1 and 3t+2.
package delaunator

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Empty marks a half-edge without a twin (hull edge) or a missing index.
const Empty = -1

type Triangulation struct {
	// Triangles holds point indices, three per counterclockwise triangle.
	Triangles []int
	// Halfedges[e] is the twin of half-edge e in the adjacent triangle, or Empty.
	Halfedges []int
	// Hull lists the convex hull point indices counterclockwise.
	Hull []int
}

func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func PrevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

func newTriangulation(n int) *Triangulation {
	maxTriangles := 0
	if n > 2 {
		maxTriangles = 2*n - 5
	}
	return &Triangulation{
		Triangles: make([]int, 0, maxTriangles*3),
		Halfedges: make([]int, 0, maxTriangles*3),
	}
}

func (t *Triangulation) addTriangle(i0, i1, i2, a, b, c int) int {
	e := len(t.Triangles)

	t.Triangles = append(t.Triangles, i0, i1, i2)
	t.Halfedges = append(t.Halfedges, a, b, c)

	if a != Empty {
		t.Halfedges[a] = e
	}
	if b != Empty {
		t.Halfedges[b] = e + 1
	}
	if c != Empty {
		t.Halfedges[c] = e + 2
	}
	return e
}

// legalize flips the edge a if the opposite point lies inside the
// circumcircle and recurses on the two new edges.
func (t *Triangulation) legalize(a int, points []geom.Point, h *hull) int {
	b := t.Halfedges[a]

	ar := PrevHalfedge(a)
	if b == Empty {
		return ar
	}

	al := NextHalfedge(a)
	bl := PrevHalfedge(b)

	p0 := t.Triangles[ar]
	pr := t.Triangles[a]
	pl := t.Triangles[al]
	p1 := t.Triangles[bl]

	if !inCircle(points[p0], points[pr], points[pl], points[p1]) {
		return ar
	}

	t.Triangles[a] = p1
	t.Triangles[b] = p0

	hbl := t.Halfedges[bl]
	har := t.Halfedges[ar]

	// the swapped edge is on the other side of the hull; fix the hull reference
	if hbl == Empty {
		e := h.start
		for {
			if h.tri[e] == bl {
				h.tri[e] = a
				break
			}
			e = h.prev[e]
			if e == h.start {
				break
			}
		}
	}

	t.Halfedges[a] = hbl
	t.Halfedges[b] = har
	t.Halfedges[ar] = bl

	if hbl != Empty {
		t.Halfedges[hbl] = a
	}
	if har != Empty {
		t.Halfedges[har] = b
	}
	if bl != Empty {
		t.Halfedges[bl] = ar
	}

	br := NextHalfedge(b)

	t.legalize(a, points, h)
	return t.legalize(br, points, h)
}

func bboxCenter(points []geom.Point) geom.Point {
	min, max := geom.Bounds(points)
	return geom.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
}

// findClosestPoint returns the index of the point nearest to p0, ignoring
// points that coincide with it.
func findClosestPoint(points []geom.Point, p0 geom.Point) (int, bool) {
	minDist := math.Inf(1)
	k := 0
	for i, p := range points {
		d := p0.Dist2(p)
		if d > 0 && d < minDist {
			k = i
			minDist = d
		}
	}
	return k, !math.IsInf(minDist, 1)
}

func findSeedTriangle(points []geom.Point) (int, int, int, bool) {
	// seed point close to the center
	i0, ok := findClosestPoint(points, bboxCenter(points))
	if !ok {
		return 0, 0, 0, false
	}
	p0 := points[i0]

	// closest point to the seed
	i1, ok := findClosestPoint(points, p0)
	if !ok {
		return 0, 0, 0, false
	}
	p1 := points[i1]

	// third point forming the smallest circumcircle with the first two
	minRadius := math.Inf(1)
	i2 := 0
	for i, p := range points {
		if i == i0 || i == i1 {
			continue
		}
		r := circumradius2(p0, p1, p)
		if r < minRadius {
			i2 = i
			minRadius = r
		}
	}
	if math.IsInf(minRadius, 1) {
		return 0, 0, 0, false
	}

	if orient(p0, p1, points[i2]) {
		return i0, i2, i1, true
	}
	return i0, i1, i2, true
}

type distance struct {
	i int
	d float64
}

func sortDistances(dists []distance) {
	sort.SliceStable(dists, func(a, b int) bool {
		return dists[a].d < dists[b].d
	})
}

// handleCollinearPoints returns a triangulation without triangles whose hull
// lists the distinct points in order along the line.
func handleCollinearPoints(points []geom.Point) *Triangulation {
	var first geom.Point
	if len(points) > 0 {
		first = points[0]
	}

	dists := make([]distance, len(points))
	for i, p := range points {
		d := p.X - first.X
		if d == 0 {
			d = p.Y - first.Y
		}
		dists[i] = distance{i, d}
	}
	sortDistances(dists)

	t := newTriangulation(0)
	d0 := math.Inf(-1)
	for _, dist := range dists {
		if dist.d > d0 {
			t.Hull = append(t.Hull, dist.i)
			d0 = dist.d
		}
	}
	return t
}

// Triangulate builds the Delaunay triangulation of points. Degenerate input
// (fewer than three distinct points, or all points on a line) yields no
// triangles and a hull ordered along the line.
func Triangulate(points []geom.Point) *Triangulation {
	i0, i1, i2, ok := findSeedTriangle(points)
	if !ok {
		return handleCollinearPoints(points)
	}

	n := len(points)
	center := circumcenter(points[i0], points[i1], points[i2])

	t := newTriangulation(n)
	t.addTriangle(i0, i1, i2, Empty, Empty, Empty)

	// sort the points by distance from the seed triangle circumcenter
	dists := make([]distance, n)
	for i, p := range points {
		dists[i] = distance{i, center.Dist2(p)}
	}
	sortDistances(dists)

	h := newHull(n, center, i0, i1, i2, points)

	for k, dist := range dists {
		i := dist.i
		p := points[i]

		// skip near-duplicate points
		if k > 0 && nearlyEquals(p, points[dists[k-1].i]) {
			continue
		}
		// skip seed triangle points
		if i == i0 || i == i1 || i == i2 {
			continue
		}

		e, walkBack := h.findVisibleEdge(p, points)
		if e == Empty {
			continue
		}

		// first triangle from the point
		tr := t.addTriangle(e, i, h.next[e], Empty, Empty, h.tri[e])

		h.tri[i] = t.legalize(tr+2, points, h)
		h.tri[e] = tr

		// walk forward through the hull, adding more triangles and flipping
		next := h.next[e]
		for {
			q := h.next[next]
			if !orient(p, points[next], points[q]) {
				break
			}
			tr := t.addTriangle(next, i, q, h.tri[i], Empty, h.tri[next])
			h.tri[i] = t.legalize(tr+2, points, h)
			h.next[next] = Empty
			next = q
		}

		// walk backward from the other side
		if walkBack {
			for {
				q := h.prev[e]
				if !orient(p, points[q], points[e]) {
					break
				}
				tr := t.addTriangle(q, i, e, Empty, h.tri[e], h.tri[q])
				t.legalize(tr+2, points, h)
				h.tri[q] = tr
				h.next[e] = Empty
				e = q
			}
		}

		h.prev[i] = e
		h.next[i] = next
		h.prev[next] = i
		h.next[e] = i
		h.start = e

		h.hashEdge(p, i)
		h.hashEdge(points[e], e)
	}

	e := h.start
	for {
		t.Hull = append(t.Hull, e)
		e = h.next[e]
		if e == h.start {
			break
		}
	}
	return t
}
