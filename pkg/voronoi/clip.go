package voronoi

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Region and edge codes. A region code has a bit set for each box edge the
// point lies strictly beyond; an edge code for each box edge it lies on.
const (
	codeLeft   = 0b0001
	codeRight  = 0b0010
	codeTop    = 0b0100
	codeBottom = 0b1000
)

func (b BoundingBox) regionCode(p geom.Point) int {
	var c int
	if p.X < b.Xl {
		c |= codeLeft
	} else if p.X > b.Xr {
		c |= codeRight
	}
	if p.Y < b.Yt {
		c |= codeTop
	} else if p.Y > b.Yb {
		c |= codeBottom
	}
	return c
}

func (b BoundingBox) edgeCode(p geom.Point) int {
	var c int
	if p.X == b.Xl {
		c |= codeLeft
	} else if p.X == b.Xr {
		c |= codeRight
	}
	if p.Y == b.Yt {
		c |= codeTop
	} else if p.Y == b.Yb {
		c |= codeBottom
	}
	return c
}

// clipSegment clips the segment p0-p1 with region codes c0, c1 to the box
// (Cohen-Sutherland). The segment is always clipped in the same direction
// so that shared edges of neighboring cells get identical endpoints.
func (b BoundingBox) clipSegment(p0, p1 geom.Point, c0, c1 int) (geom.Point, geom.Point, bool) {
	flip := c0 < c1
	if flip {
		p0, p1 = p1, p0
		c0, c1 = c1, c0
	}

	for {
		if c0 == 0 && c1 == 0 {
			if flip {
				return p1, p0, true
			}
			return p0, p1, true
		}
		if c0&c1 != 0 {
			return geom.Point{}, geom.Point{}, false
		}

		c := c0
		if c == 0 {
			c = c1
		}

		var p geom.Point
		switch {
		case c&codeBottom != 0:
			p = geom.Point{X: p0.X + (p1.X-p0.X)*(b.Yb-p0.Y)/(p1.Y-p0.Y), Y: b.Yb}
		case c&codeTop != 0:
			p = geom.Point{X: p0.X + (p1.X-p0.X)*(b.Yt-p0.Y)/(p1.Y-p0.Y), Y: b.Yt}
		case c&codeRight != 0:
			p = geom.Point{X: b.Xr, Y: p0.Y + (p1.Y-p0.Y)*(b.Xr-p0.X)/(p1.X-p0.X)}
		default:
			p = geom.Point{X: b.Xl, Y: p0.Y + (p1.Y-p0.Y)*(b.Xl-p0.X)/(p1.X-p0.X)}
		}

		if c0 != 0 {
			p0, c0 = p, b.regionCode(p)
		} else {
			p1, c1 = p, b.regionCode(p)
		}
	}
}

// project returns where the ray from p0 along dir leaves the box. ok is false
// when p0 is already beyond the exit edge or dir is zero.
func (b BoundingBox) project(p0, dir geom.Point) (geom.Point, bool) {
	if dir.X == 0 && dir.Y == 0 || p0.IsNaN() {
		return geom.Point{}, false
	}

	t := math.Inf(1)
	var p geom.Point

	if dir.Y < 0 {
		if p0.Y <= b.Yt {
			return geom.Point{}, false
		}
		if c := (b.Yt - p0.Y) / dir.Y; c < t {
			t = c
			p = geom.Point{X: p0.X + t*dir.X, Y: b.Yt}
		}
	} else if dir.Y > 0 {
		if p0.Y >= b.Yb {
			return geom.Point{}, false
		}
		if c := (b.Yb - p0.Y) / dir.Y; c < t {
			t = c
			p = geom.Point{X: p0.X + t*dir.X, Y: b.Yb}
		}
	}

	if dir.X > 0 {
		if p0.X >= b.Xr {
			return geom.Point{}, false
		}
		if c := (b.Xr - p0.X) / dir.X; c < t {
			t = c
			p = geom.Point{X: b.Xr, Y: p0.Y + t*dir.Y}
		}
	} else if dir.X < 0 {
		if p0.X <= b.Xl {
			return geom.Point{}, false
		}
		if c := (b.Xl - p0.X) / dir.X; c < t {
			t = c
			p = geom.Point{X: b.Xl, Y: p0.Y + t*dir.Y}
		}
	}
	return p, true
}

// edge walks the box boundary clockwise from edge code e0 to e1, inserting
// at position j every corner passed that belongs to cell i. It returns the
// position after the inserted corners.
func (v *Voronoi) edge(i, e0, e1 int, points *[]geom.Point, j int) int {
	for e0 != e1 {
		var corner geom.Point
		switch e0 {
		case codeTop | codeLeft:
			e0 = codeTop
			continue
		case codeTop:
			e0 = codeTop | codeRight
			corner = geom.Point{X: v.Xr, Y: v.Yt}
		case codeTop | codeRight:
			e0 = codeRight
			continue
		case codeRight:
			e0 = codeBottom | codeRight
			corner = geom.Point{X: v.Xr, Y: v.Yb}
		case codeBottom | codeRight:
			e0 = codeBottom
			continue
		case codeBottom:
			e0 = codeBottom | codeLeft
			corner = geom.Point{X: v.Xl, Y: v.Yb}
		case codeBottom | codeLeft:
			e0 = codeLeft
			continue
		case codeLeft:
			e0 = codeTop | codeLeft
			corner = geom.Point{X: v.Xl, Y: v.Yt}
		default:
			// not an edge code; nothing sensible to walk
			return j
		}

		p := *points
		if (j >= len(p) || p[j] != corner) && v.Contains(i, corner) {
			p = append(p, geom.Point{})
			copy(p[j+1:], p[j:])
			p[j] = corner
			*points = p
			j++
		}
	}
	return j
}

// clipFinite intersects the closed polygon points with the box.
func (v *Voronoi) clipFinite(i int, points []geom.Point) []geom.Point {
	var out []geom.Point

	n := len(points)
	if n == 0 {
		return nil
	}

	p1 := points[n-1]
	c1 := v.regionCode(p1)
	e1 := 0

	for j := 0; j < n; j++ {
		p0, c0 := p1, c1
		p1, c1 = points[j], v.regionCode(points[j])

		if c0 == 0 && c1 == 0 {
			e1 = 0
			out = append(out, p1)
			continue
		}

		var s0, s1 geom.Point
		var ok bool
		if c0 == 0 {
			if s0, s1, ok = v.clipSegment(p0, p1, c0, c1); !ok {
				continue
			}
		} else {
			if s1, s0, ok = v.clipSegment(p1, p0, c1, c0); !ok {
				continue
			}
			var e0 int
			e0, e1 = e1, v.edgeCode(s0)
			if e0 != 0 && e1 != 0 {
				v.edge(i, e0, e1, &out, len(out))
			}
			out = append(out, s0)
		}

		var e0 int
		e0, e1 = e1, v.edgeCode(s1)
		if e0 != 0 && e1 != 0 {
			v.edge(i, e0, e1, &out, len(out))
		}
		out = append(out, s1)
	}

	if len(out) > 0 {
		e0 := e1
		e1 = v.edgeCode(out[0])
		if e0 != 0 && e1 != 0 {
			v.edge(i, e0, e1, &out, len(out))
		}
		return out
	}

	// no edge crosses the box: either the box is entirely inside the cell or
	// entirely outside
	if v.Contains(i, v.Center()) {
		return v.ring()
	}
	return nil
}

// clipInfinite closes an open hull cell with the points where its two rays
// leave the box, clips it and stitches in the box corners it encloses.
func (v *Voronoi) clipInfinite(i int, points []geom.Point, in, out geom.Point) []geom.Point {
	p := make([]geom.Point, 0, len(points)+2)
	if q, ok := v.project(points[0], in); ok {
		p = append(p, q)
	}
	p = append(p, points...)
	if q, ok := v.project(p[len(p)-1], out); ok {
		p = append(p, q)
	}

	if clipped := v.clipFinite(i, p); clipped != nil {
		p = clipped
		n := len(p)
		c1 := v.edgeCode(p[n-1])
		for j := 0; j < n; j++ {
			c0 := c1
			c1 = v.edgeCode(p[j])
			if c0 != 0 && c1 != 0 {
				j = v.edge(i, c0, c1, &p, j)
				n = len(p)
			}
		}
		return p
	}

	if v.Contains(i, v.Center()) {
		return []geom.Point{
			{X: v.Xl, Y: v.Yt},
			{X: v.Xr, Y: v.Yt},
			{X: v.Xr, Y: v.Yb},
			{X: v.Xl, Y: v.Yb},
		}
	}
	return nil
}
