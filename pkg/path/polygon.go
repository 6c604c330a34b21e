package path

import "github.com/0x0FACED/go-delaunay/pkg/geom"

// Polygon collects the vertices drawn into it. Closing the path repeats the
// first vertex, so a closed ring has first == last. Arcs and rectangles are
// not representable as a single ring and are ignored.
type Polygon struct {
	points []geom.Point
}

func NewPolygon() *Polygon {
	return &Polygon{}
}

func (p *Polygon) MoveTo(pt geom.Point) {
	p.points = append(p.points, pt)
}

func (p *Polygon) LineTo(pt geom.Point) {
	p.points = append(p.points, pt)
}

func (p *Polygon) ClosePath() {
	if len(p.points) > 0 {
		p.points = append(p.points, p.points[0])
	}
}

func (p *Polygon) Arc(geom.Point, float64, float64, float64) {}

func (p *Polygon) Rect(geom.Point, float64, float64) {}

// Points returns the collected ring, nil if nothing was drawn.
func (p *Polygon) Points() []geom.Point {
	if len(p.points) == 0 {
		return nil
	}
	return p.points
}
