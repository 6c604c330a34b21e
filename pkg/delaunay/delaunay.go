// Package delaunay indexes a Delaunay triangulation for traversal: an
// incoming half-edge per point, hull positions, nearest-point search,
// neighbors and rendering into a path.Context.
package delaunay

import (
	"github.com/0x0FACED/go-delaunay/pkg/delaunator"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"go.uber.org/zap"
)

type Point = geom.Point

// Empty marks a missing half-edge or point index.
const Empty = delaunator.Empty

// Triangulator computes the raw triangulation of a point set.
type Triangulator interface {
	Triangulate(points []Point) *delaunator.Triangulation
}

type TriangulatorFunc func(points []Point) *delaunator.Triangulation

func (f TriangulatorFunc) Triangulate(points []Point) *delaunator.Triangulation {
	return f(points)
}

type Option func(*Delaunay)

func WithLogger(log *zap.Logger) Option {
	return func(d *Delaunay) {
		d.log = log
	}
}

// WithTriangulator replaces the sweep-hull triangulator.
func WithTriangulator(t Triangulator) Option {
	return func(d *Delaunay) {
		d.triangulator = t
	}
}

type Delaunay struct {
	// Points is a copy of the input, jittered if the input was collinear.
	Points []Point
	// Triangles, Halfedges and Hull come from the triangulator. For one or two
	// distinct points they hold a single placeholder triangle.
	Triangles []int
	Halfedges []int
	Hull      []int
	// Inedges[p] is a half-edge ending at p, preferring hull edges, or Empty
	// for points that coincide with another one.
	Inedges []int

	hullIndex []int
	collinear []int

	triangulator Triangulator
	log          *zap.Logger
}

// New triangulates points. It never fails: degenerate input produces a
// degenerate but traversable structure.
func New(points []Point, opts ...Option) *Delaunay {
	d := &Delaunay{
		Points:       append([]Point(nil), points...),
		triangulator: TriangulatorFunc(delaunator.Triangulate),
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.init()
	return d
}

// From converts arbitrary values to points using the accessors.
func From[T any](values []T, fx, fy func(T) float64, opts ...Option) *Delaunay {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: fx(v), Y: fy(v)}
	}
	return New(points, opts...)
}

func (d *Delaunay) init() {
	t := d.triangulator.Triangulate(d.Points)

	if len(t.Hull) > 2 && collinear(d.Points, t.Triangles) {
		d.collinear = sortedOrder(d.Points)

		e := d.Points[d.collinear[0]]
		f := d.Points[d.collinear[len(d.collinear)-1]]
		r := jitterRadius(e, f)

		d.log.Info("[delaunay] collinear input, jittering points",
			zap.Int("points", len(d.Points)),
			zap.Float64("radius", r),
		)

		for i, p := range d.Points {
			d.Points[i] = jitter(p, r)
		}
		t = d.triangulator.Triangulate(d.Points)
	}

	d.Triangles = t.Triangles
	d.Halfedges = t.Halfedges
	d.Hull = t.Hull

	n := len(d.Points)
	d.Inedges = make([]int, n)
	d.hullIndex = make([]int, n)
	for i := range d.Inedges {
		d.Inedges[i] = Empty
		d.hullIndex[i] = Empty
	}

	// hull points start from their exterior half-edge so that a rotation
	// around them covers every neighbor
	for e := range d.Halfedges {
		p := d.Triangles[delaunator.NextHalfedge(e)]
		if d.Halfedges[e] == Empty || d.Inedges[p] == Empty {
			d.Inedges[p] = e
		}
	}

	for i, h := range d.Hull {
		d.hullIndex[h] = i
	}

	// one or two distinct points: a placeholder triangle keeps triangle-indexed
	// consumers in range
	if len(d.Hull) > 0 && len(d.Hull) <= 2 {
		d.Triangles = []int{d.Hull[0], Empty, Empty}
		d.Halfedges = []int{Empty, Empty, Empty}
		d.Inedges[d.Hull[0]] = 1
		if len(d.Hull) == 2 {
			d.Inedges[d.Hull[1]] = 0
			d.Triangles[1] = d.Hull[1]
			d.Triangles[2] = d.Hull[1]
		}
	}

	d.log.Debug("[delaunay] triangulation indexed",
		zap.Int("points", n),
		zap.Int("triangles", len(d.Triangles)/3),
		zap.Int("hull", len(d.Hull)),
	)
}

// HullIndex returns the position of point i in Hull, or Empty.
func (d *Delaunay) HullIndex(i int) int {
	if i < 0 || i >= len(d.hullIndex) {
		return Empty
	}
	return d.hullIndex[i]
}

// Collinear returns the points ordered by x then y when the input was
// collinear and had to be jittered, nil otherwise.
func (d *Delaunay) Collinear() []int {
	return d.collinear
}
