package geom

import (
	"math"
)

// Point is a site or a vertex in the plane.
type Point struct {
	X float64
	Y float64
}

func (p Point) Dist2(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// NaN is used for vertices that cannot be computed, e.g. the circumcenter of
// a placeholder triangle.
var NaN = Point{math.NaN(), math.NaN()}

// Bounds returns the min and max corners of points. Both are infinite for an
// empty slice.
func Bounds(points []Point) (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
