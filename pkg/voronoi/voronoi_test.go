package voronoi

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

func pts(xy ...float64) []geom.Point {
	points := make([]geom.Point, len(xy)/2)
	for i := range points {
		points[i] = geom.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	return points
}

func newVoronoi(t *testing.T, points []geom.Point, opts ...Option) *Voronoi {
	t.Helper()
	v, err := New(delaunay.New(points), opts...)
	require.NoError(t, err)
	return v
}

func flat(points []geom.Point) []float64 {
	out := make([]float64, 0, 2*len(points))
	for _, p := range points {
		out = append(out, p.X, p.Y)
	}
	return out
}

func area(ring []geom.Point) float64 {
	a := 0.0
	for i := 0; i+1 < len(ring); i++ {
		a += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return math.Abs(a) / 2
}

func TestBounds(t *testing.T) {
	v := newVoronoi(t, pts(0, 0, 1, 0, 0, 1, 1, 1))
	assert.Equal(t, BoundingBox{Xl: 0, Xr: 960, Yt: 0, Yb: 500}, v.BoundingBox)

	v = newVoronoi(t, pts(0, 0, 1, 0, 0, 1, 1, 1), WithBounds(NewBoundingBox(-1, 2, -1, 2)))
	assert.Equal(t, -1.0, v.Xl)
	assert.Equal(t, 2.0, v.Xr)
	assert.Equal(t, -1.0, v.Yt)
	assert.Equal(t, 2.0, v.Yb)
	assert.Equal(t, "M-1,-1h3v3h-3Z", v.RenderBoundsString())
}

func TestInvalidBounds(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	d := delaunay.New(pts(0, 0, 1, 0, 0, 1))

	for _, b := range []BoundingBox{
		NewBoundingBox(2, 1, 0, 0),
		NewBoundingBox(0, 1, 5, 0),
		NewBoundingBox(math.NaN(), 1, 0, 1),
	} {
		v, err := New(d, WithBounds(b), WithLogger(zap.New(core)))
		assert.Nil(t, v)
		assert.ErrorIs(t, err, ErrInvalidBounds)
	}
	assert.Equal(t, 3, logs.FilterMessage("[voronoi] bounds rejected").Len())

	// empty boxes are allowed
	assert.NoError(t, NewBoundingBox(1, 1, 2, 2).Validate())
}

func TestSquare(t *testing.T) {
	v := newVoronoi(t, pts(0, 0, 1, 0, 0, 1, 1, 1))

	assert.Equal(t, pts(0.5, 0.5, 0.5, 0.5), v.Circumcenters)
	assert.Equal(t, []float64{0, -1, -1, 0, 1, 0, 0, -1, -1, 0, 0, 1, 0, 1, 1, 0}, flat(v.Vectors))
}

func TestCoincidentPoints(t *testing.T) {
	v := newVoronoi(t, pts(0, 0, 1, 0, 0, 1, 1, 0), WithBounds(NewBoundingBox(-1, 2, -1, 2)))

	assert.Equal(t, pts(0.5, 0.5), v.Circumcenters)
	assert.Equal(t, []float64{0, -1, -1, 0, 1, 1, 0, -1, -1, 0, 1, 1, 0, 0, 0, 0}, flat(v.Vectors))

	assert.Equal(t, "", v.RenderCellString(3))
	assert.Nil(t, v.CellPolygon(3))
	assert.False(t, v.Contains(3, geom.Point{X: 1, Y: 0}))
	assert.True(t, v.Contains(1, geom.Point{X: 1, Y: 0}))
}

func TestMidpointCircumcenter(t *testing.T) {
	v := newVoronoi(t, pts(0, 0, 1, 0, 0, 1), WithBounds(NewBoundingBox(-1, 2, -1, 2)))

	assert.Equal(t, "M-1,-1L0.5,-1L0.5,0.5L-1,0.5Z", v.RenderCellString(0))
	assert.Equal(t, "M2,-1L2,2L0.5,0.5L0.5,-1Z", v.RenderCellString(1))
	assert.Equal(t, "M-1,2L-1,0.5L0.5,0.5L2,2Z", v.RenderCellString(2))
}

func TestNoPoints(t *testing.T) {
	v := newVoronoi(t, nil, WithBounds(NewBoundingBox(-1, 2, -1, 2)))

	assert.Equal(t, "", v.RenderString())
	assert.Equal(t, "", v.RenderCellString(0))
	for range v.CellPolygons() {
		t.Fatal("no cells expected")
	}
}

func TestOnePoint(t *testing.T) {
	v := newVoronoi(t, pts(0, 0), WithBounds(NewBoundingBox(-1, 2, -1, 2)))

	assert.Equal(t, "M2,-1L2,2L-1,2L-1,-1Z", v.RenderCellString(0))
	assert.Equal(t, pts(2, -1, 2, 2, -1, 2, -1, -1, 2, -1), v.CellPolygon(0))
	assert.Equal(t, "", v.RenderString())
}

func TestTwoPoints(t *testing.T) {
	t.Run("with duplicates", func(t *testing.T) {
		v := newVoronoi(t, pts(0, 0, 1, 0, 1, 0, 1, 0), WithBounds(NewBoundingBox(-1, 2, -1, 2)))

		assert.Equal(t, "M-1,2L-1,-1L0.5,-1L0.5,2Z", v.RenderCellString(0))
		assert.Equal(t, 0, v.Delaunay.Find(geom.Point{X: -1, Y: 0}))
		assert.Equal(t, 1, v.Delaunay.Find(geom.Point{X: 2, Y: 0}))
	})

	t.Run("zero-length edges are removed", func(t *testing.T) {
		v := newVoronoi(t, pts(10, 10, 20, 10), WithBounds(NewBoundingBox(0, 30, 0, 20)))
		assert.Equal(t, pts(0, 20, 0, 0, 15, 0, 15, 20, 0, 20), v.CellPolygon(0))
	})

	t.Run("default bounds", func(t *testing.T) {
		v := newVoronoi(t, pts(-20, 20, 20, 20))

		assert.Equal(t, "", v.RenderCellString(0))
		assert.Equal(t, "M960,0L960,500L0,500L0,0Z", v.RenderCellString(1))
		assert.Equal(t, "M0,20L0,0M0,20L0,500", v.RenderString())
	})
}

func TestCross(t *testing.T) {
	v := newVoronoi(t, pts(25, 25, 25, 75, 75, 75, 75, 25, 50, 50), WithBounds(NewBoundingBox(0, 100, 0, 100)))

	assert.Equal(t,
		"M25,50L50,75M25,50L50,25M50,75L75,50M50,25L75,50M50,75L50,100M75,50L100,50M50,25L50,0M25,50L0,50",
		v.RenderString())
	assert.Equal(t, pts(0, 0, 50, 0, 50, 25, 25, 50, 0, 50, 0, 0), v.CellPolygon(0))
	assert.Equal(t, pts(25, 50, 50, 25, 75, 50, 50, 75, 25, 50), v.CellPolygon(4))

	n4 := slices.Sorted(v.Neighbors(4))
	assert.Equal(t, []int{0, 1, 2, 3}, n4)
	n0 := slices.Sorted(v.Neighbors(0))
	assert.Equal(t, []int{1, 3, 4}, n0)

	assert.True(t, v.Contains(4, geom.Point{X: 50, Y: 50}))
	assert.True(t, v.Contains(0, geom.Point{X: 1, Y: 1}))
	assert.False(t, v.Contains(0, geom.Point{X: 99, Y: 99}))
	assert.False(t, v.Contains(0, geom.NaN))
}

func TestAlmostCollinear(t *testing.T) {
	v := newVoronoi(t, pts(90, 73, 7, 87, 33, 85), WithBounds(NewBoundingBox(0, 100, 0, 100)))

	rec := &recorder{}
	v.Render(rec)

	want := [][2]geom.Point{
		{{X: 13.384615384615387, Y: 0}, {X: 21.07692307692308, Y: 100}},
		{{X: 44.8684210526316, Y: 0}, {X: 65.92105263157896, Y: 100}},
	}
	require.Len(t, rec.segments, len(want))
	for i, s := range want {
		for k := range s {
			assert.InDelta(t, s[k].X, rec.segments[i][k].X, 1e-9)
			assert.InDelta(t, s[k].Y, rec.segments[i][k].Y, 1e-9)
		}
	}
}

// recorder collects the move-line pairs of a rendered diagram.
type recorder struct {
	segments [][2]geom.Point
	at       geom.Point
}

func (r *recorder) MoveTo(p geom.Point) { r.at = p }
func (r *recorder) LineTo(p geom.Point) {
	r.segments = append(r.segments, [2]geom.Point{r.at, p})
	r.at = p
}
func (r *recorder) ClosePath()                                {}
func (r *recorder) Arc(geom.Point, float64, float64, float64) {}
func (r *recorder) Rect(geom.Point, float64, float64)         {}

func TestZeroLengthEdges(t *testing.T) {
	v := newVoronoi(t, pts(50, 10, 10, 50, 10, 10, 200, 100), WithBounds(NewBoundingBox(40, 440, 40, 180)))
	assert.Len(t, v.CellPolygon(0), 4)
}

func TestDegenerateTriangle(t *testing.T) {
	points := pts(
		424.75, 253.75,
		424.75, 253.74999999999997,
		407.17640687119285, 296.17640687119285,
		364.75, 313.75,
		322.32359312880715, 296.17640687119285,
		304.75, 253.75,
		322.32359312880715, 211.32359312880715,
		364.75, 193.75,
		407.17640687119285, 211.32359312880715,
		624.75, 253.75,
		607.1764068711929, 296.17640687119285,
		564.75, 313.75,
		522.3235931288071, 296.17640687119285,
		504.75, 253.75,
		564.75, 193.75,
	)
	v := newVoronoi(t, points, WithBounds(NewBoundingBox(10, 960, 10, 500)))
	assert.Len(t, v.CellPolygon(0), 4)
}

func TestCornerPoints(t *testing.T) {
	tests := []struct {
		points  []geom.Point
		lengths []int
	}{
		{pts(289, 25, 3, 22, 93, 165, 282, 184, 65, 89), []int{6, 4, 6, 5, 6}},
		{pts(189, 13, 197, 26, 47, 133, 125, 77, 288, 15), []int{4, 6, 5, 6, 5}},
		{pts(44, 42, 210, 193, 113, 103, 185, 43, 184, 37), []int{5, 5, 7, 5, 6}},
	}
	for _, tt := range tests {
		v := newVoronoi(t, tt.points, WithBounds(NewBoundingBox(0, 290, 0, 190)))

		var lengths []int
		for _, cell := range v.CellPolygons() {
			lengths = append(lengths, len(cell))
		}
		assert.Equal(t, tt.lengths, lengths)
	}
}

func TestCellPolygonsSkipEmpty(t *testing.T) {
	v := newVoronoi(t, pts(0, 0, 3, 3, 1, 1, -3, -2), WithBounds(NewBoundingBox(0, 2, 0, 2)))

	var indices, lengths []int
	for i, cell := range v.CellPolygons() {
		indices = append(indices, i)
		lengths = append(lengths, len(cell))
		assert.Equal(t, cell[0], cell[len(cell)-1])
	}
	assert.Equal(t, []int{0, 2}, indices)
	assert.Equal(t, []int{4, 6}, lengths)
}

func TestCellsTileBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	points := make([]geom.Point, 300)
	for i := range points {
		points[i] = geom.Point{X: rnd.Float64()*1000 - 20, Y: rnd.Float64()*540 - 20}
	}
	bounds := NewBoundingBox(0, 960, 0, 500)
	v := newVoronoi(t, points, WithBounds(bounds))

	total := 0.0
	for i, cell := range v.CellPolygons() {
		require.GreaterOrEqual(t, len(cell), 4, "cell %d", i)
		assert.Equal(t, cell[0], cell[len(cell)-1])
		for _, p := range cell {
			assert.GreaterOrEqual(t, p.X, bounds.Xl-1e-9)
			assert.LessOrEqual(t, p.X, bounds.Xr+1e-9)
			assert.GreaterOrEqual(t, p.Y, bounds.Yt-1e-9)
			assert.LessOrEqual(t, p.Y, bounds.Yb+1e-9)
		}
		total += area(cell)
	}
	assert.InDelta(t, bounds.Width()*bounds.Height(), total, 1e-6*bounds.Width()*bounds.Height())

	for i, p := range points {
		if p.X > 0 && p.X < 960 && p.Y > 0 && p.Y < 500 {
			assert.True(t, v.Contains(i, p), "site %d", i)
			assert.NotNil(t, v.CellPolygon(i), "site %d", i)
		}
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	points := make([]geom.Point, 60)
	for i := range points {
		points[i] = geom.Point{X: rnd.Float64() * 960, Y: rnd.Float64() * 500}
	}
	v := newVoronoi(t, points)

	for i := range points {
		for j := range v.Neighbors(i) {
			assert.Contains(t, slices.Collect(v.Neighbors(j)), i, "%d-%d", i, j)
		}
	}
}
