package delaunay

import (
	"math"
	"sort"
)

const collinearEpsilon = 1e-10

// collinear reports whether every triangle is numerically flat.
func collinear(points []Point, triangles []int) bool {
	for i := 0; i+2 < len(triangles); i += 3 {
		a := points[triangles[i]]
		b := points[triangles[i+1]]
		c := points[triangles[i+2]]
		cross := (c.X-a.X)*(b.Y-a.Y) - (b.X-a.X)*(c.Y-a.Y)
		if cross > collinearEpsilon {
			return false
		}
	}
	return true
}

// sortedOrder returns point indices ordered by x, then y.
func sortedOrder(points []Point) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := points[order[i]], points[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return order
}

// jitterRadius scales the perturbation to the extent of the point set, given
// its first and last points in sorted order.
func jitterRadius(e, f Point) float64 {
	return 1e-8 * math.Hypot(f.Y-e.Y, f.X-e.X)
}

// jitter moves p by at most r in a direction that depends only on p, so equal
// inputs stay equal and results are reproducible.
func jitter(p Point, r float64) Point {
	return Point{
		X: p.X + math.Sin(p.X+p.Y)*r,
		Y: p.Y + math.Cos(p.X-p.Y)*r,
	}
}
