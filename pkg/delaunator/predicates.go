package delaunator

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// epsilon is the tolerance under which two sorted points are treated as duplicates.
const epsilon = 2 * 0x1p-52

// orient reports whether r lies to the right of the directed line p->q.
func orient(p, q, r geom.Point) bool {
	return (q.Y-p.Y)*(r.X-q.X)-(q.X-p.X)*(r.Y-q.Y) < 0
}

func circumdelta(a, b, c geom.Point) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ex := c.X - a.X
	ey := c.Y - a.Y

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 0.5 / (dx*ey - dy*ex)

	x := (ey*bl - dy*cl) * d
	y := (dx*cl - ex*bl) * d
	return x, y
}

func circumradius2(a, b, c geom.Point) float64 {
	x, y := circumdelta(a, b, c)
	return x*x + y*y
}

func circumcenter(a, b, c geom.Point) geom.Point {
	x, y := circumdelta(a, b, c)
	return geom.Point{X: a.X + x, Y: a.Y + y}
}

// inCircle reports whether p lies strictly inside the circumcircle of a, b, c.
func inCircle(a, b, c, p geom.Point) bool {
	dx := a.X - p.X
	dy := a.Y - p.Y
	ex := b.X - p.X
	ey := b.Y - p.Y
	fx := c.X - p.X
	fy := c.Y - p.Y

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	return dx*(ey*cp-bp*fy)-dy*(ex*cp-bp*fx)+ap*(ex*fy-ey*fx) < 0
}

func nearlyEquals(p, q geom.Point) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}
