package delaunator

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// hull is the advancing convex hull as a doubly linked list over point
// indices, with an angular hash for finding a visible edge quickly.
type hull struct {
	prev []int
	next []int
	tri  []int
	hash []int

	start  int
	center geom.Point
}

func newHull(n int, center geom.Point, i0, i1, i2 int, points []geom.Point) *hull {
	hashLen := int(math.Sqrt(float64(n)))
	if hashLen < 1 {
		hashLen = 1
	}

	h := &hull{
		prev:   make([]int, n),
		next:   make([]int, n),
		tri:    make([]int, n),
		hash:   make([]int, hashLen),
		start:  i0,
		center: center,
	}
	for i := range h.hash {
		h.hash[i] = Empty
	}

	h.next[i0] = i1
	h.prev[i2] = i1
	h.next[i1] = i2
	h.prev[i0] = i2
	h.next[i2] = i0
	h.prev[i1] = i0

	h.tri[i0] = 0
	h.tri[i1] = 1
	h.tri[i2] = 2

	h.hashEdge(points[i0], i0)
	h.hashEdge(points[i1], i1)
	h.hashEdge(points[i2], i2)
	return h
}

// hashKey maps the angle of p around the center to a bucket. It uses a
// monotonic pseudo-angle instead of atan2.
func (h *hull) hashKey(p geom.Point) int {
	dx := p.X - h.center.X
	dy := p.Y - h.center.Y

	k := dx / (math.Abs(dx) + math.Abs(dy))
	var a float64
	if dy > 0 {
		a = (3 - k) / 4
	} else {
		a = (1 + k) / 4
	}

	key := math.Floor(float64(len(h.hash)) * a)
	if math.IsNaN(key) || key < 0 {
		return 0
	}
	return int(key) % len(h.hash)
}

func (h *hull) hashEdge(p geom.Point, i int) {
	h.hash[h.hashKey(p)] = i
}

// findVisibleEdge returns a hull edge start e such that p sees the edge
// e->next[e], and whether the walk may also need to go backwards from e.
func (h *hull) findVisibleEdge(p geom.Point, points []geom.Point) (int, bool) {
	start := Empty
	key := h.hashKey(p)
	n := len(h.hash)
	for j := 0; j < n; j++ {
		start = h.hash[(key+j)%n]
		if start != Empty && h.next[start] != Empty {
			break
		}
	}
	if start == Empty || h.next[start] == Empty {
		return Empty, false
	}

	start = h.prev[start]
	e := start
	for !orient(p, points[e], points[h.next[e]]) {
		e = h.next[e]
		if e == start {
			return Empty, false
		}
	}
	return e, e == start
}
