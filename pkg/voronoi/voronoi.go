// Package voronoi derives the Voronoi diagram of a Delaunay triangulation
// and clips its cells to a bounding box.
package voronoi

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"go.uber.org/zap"
)

type Option func(*Voronoi)

func WithBounds(b BoundingBox) Option {
	return func(v *Voronoi) {
		v.BoundingBox = b
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(v *Voronoi) {
		v.log = log
	}
}

type Voronoi struct {
	Delaunay *delaunay.Delaunay
	BoundingBox

	// Circumcenters[t] is the Voronoi vertex of Delaunay triangle t.
	Circumcenters []geom.Point
	// Vectors[2i] and Vectors[2i+1] are the directions of the incoming and
	// outgoing rays of the open cell of hull point i; zero for inner points.
	Vectors []geom.Point

	log *zap.Logger
}

// New builds the diagram of d clipped to the bounds given with WithBounds, or
// DefaultBoundingBox. It fails only on invalid bounds.
func New(d *delaunay.Delaunay, opts ...Option) (*Voronoi, error) {
	v := &Voronoi{
		Delaunay:    d,
		BoundingBox: DefaultBoundingBox,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}

	if err := v.BoundingBox.Validate(); err != nil {
		v.log.Error("[voronoi] bounds rejected", zap.Error(err))
		return nil, err
	}

	v.init()
	return v, nil
}

func (v *Voronoi) init() {
	points := v.Delaunay.Points
	triangles := v.Delaunay.Triangles
	hull := v.Delaunay.Hull

	v.Circumcenters = make([]geom.Point, len(triangles)/3)
	for i := 0; i+2 < len(triangles); i += 3 {
		v.Circumcenters[i/3] = v.circumcenter(triangles[i], triangles[i+1], triangles[i+2])
	}

	v.Vectors = make([]geom.Point, 2*len(points))
	if len(hull) == 0 {
		return
	}

	// ray perpendicular to each hull edge, shared by both of its endpoints
	h1 := hull[len(hull)-1]
	p1 := points[h1]
	for _, h := range hull {
		h0, p0 := h1, p1
		h1, p1 = h, points[h]

		ray := geom.Point{X: p0.Y - p1.Y, Y: p1.X - p0.X}
		v.Vectors[2*h0+1] = ray
		v.Vectors[2*h1] = ray
	}

	v.log.Debug("[voronoi] diagram built",
		zap.Int("vertices", len(v.Circumcenters)),
		zap.Int("hull", len(hull)),
		zap.Any("bbox", v.BoundingBox),
	)
}

// circumcenter handles flat triangles: exactly flat ones get a vertex pushed
// far away perpendicular to the edge t1-t3, away from the first point of the
// triangulation; nearly flat ones collapse to the midpoint of that edge.
func (v *Voronoi) circumcenter(t1, t2, t3 int) geom.Point {
	if t1 == delaunay.Empty || t2 == delaunay.Empty || t3 == delaunay.Empty {
		return geom.NaN
	}

	points := v.Delaunay.Points
	p1, p2, p3 := points[t1], points[t2], points[t3]

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	ex := p3.X - p1.X
	ey := p3.Y - p1.Y
	ab := (dx*ey - dy*ex) * 2

	switch {
	case ab == 0 || math.IsNaN(ab):
		r := points[v.Delaunay.Triangles[0]]
		a := 1e9 * sign((r.X-p1.X)*ey-(r.Y-p1.Y)*ex)
		return geom.Point{
			X: (p1.X+p3.X)/2 - a*ey,
			Y: (p1.Y+p3.Y)/2 + a*ex,
		}
	case math.Abs(ab) < 1e-8:
		return geom.Point{X: (p1.X + p3.X) / 2, Y: (p1.Y + p3.Y) / 2}
	default:
		d := 1 / ab
		bl := dx*dx + dy*dy
		cl := ex*ex + ey*ey
		return geom.Point{
			X: p1.X + (ey*bl-dy*cl)*d,
			Y: p1.Y + (dx*cl-ex*bl)*d,
		}
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		// 0 or NaN
		return x
	}
}
