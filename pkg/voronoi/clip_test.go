package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

var box = NewBoundingBox(0, 10, 0, 10)

func TestBoundingBox(t *testing.T) {
	b := NewBoundingBox(-2, 4, 1, 3)

	assert.Equal(t, geom.Point{X: 1, Y: 2}, b.Center())
	assert.Equal(t, 6.0, b.Width())
	assert.Equal(t, 2.0, b.Height())
	assert.Equal(t, pts(4, 1, 4, 3, -2, 3, -2, 1), b.ring())
	assert.Equal(t, NewBoundingBox(0, 960, 0, 500), DefaultBoundingBox)
}

func TestRegionCode(t *testing.T) {
	tests := []struct {
		p    geom.Point
		want int
	}{
		{geom.Point{X: 5, Y: 5}, 0},
		{geom.Point{X: 0, Y: 10}, 0},
		{geom.Point{X: -1, Y: 5}, codeLeft},
		{geom.Point{X: 11, Y: 5}, codeRight},
		{geom.Point{X: 5, Y: -1}, codeTop},
		{geom.Point{X: 5, Y: 11}, codeBottom},
		{geom.Point{X: -1, Y: -1}, codeLeft | codeTop},
		{geom.Point{X: 11, Y: 11}, codeRight | codeBottom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, box.regionCode(tt.p), "%v", tt.p)
	}
}

func TestEdgeCode(t *testing.T) {
	assert.Equal(t, 0, box.edgeCode(geom.Point{X: 5, Y: 5}))
	assert.Equal(t, codeLeft, box.edgeCode(geom.Point{X: 0, Y: 5}))
	assert.Equal(t, codeRight|codeBottom, box.edgeCode(geom.Point{X: 10, Y: 10}))
	assert.Equal(t, codeTop|codeLeft, box.edgeCode(geom.Point{X: 0, Y: 0}))
}

func TestClipSegment(t *testing.T) {
	clip := func(p0, p1 geom.Point) (geom.Point, geom.Point, bool) {
		return box.clipSegment(p0, p1, box.regionCode(p0), box.regionCode(p1))
	}

	t.Run("inside", func(t *testing.T) {
		s0, s1, ok := clip(geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 3})
		assert.True(t, ok)
		assert.Equal(t, geom.Point{X: 1, Y: 1}, s0)
		assert.Equal(t, geom.Point{X: 2, Y: 3}, s1)
	})

	t.Run("crossing keeps direction", func(t *testing.T) {
		s0, s1, ok := clip(geom.Point{X: -5, Y: 5}, geom.Point{X: 15, Y: 5})
		assert.True(t, ok)
		assert.Equal(t, geom.Point{X: 0, Y: 5}, s0)
		assert.Equal(t, geom.Point{X: 10, Y: 5}, s1)

		s0, s1, ok = clip(geom.Point{X: 15, Y: 5}, geom.Point{X: -5, Y: 5})
		assert.True(t, ok)
		assert.Equal(t, geom.Point{X: 10, Y: 5}, s0)
		assert.Equal(t, geom.Point{X: 0, Y: 5}, s1)
	})

	t.Run("both directions agree", func(t *testing.T) {
		a, b := geom.Point{X: -3.7, Y: 2.1}, geom.Point{X: 7.3, Y: 13.9}
		s0, s1, ok := clip(a, b)
		assert.True(t, ok)
		r0, r1, ok := clip(b, a)
		assert.True(t, ok)
		assert.Equal(t, s0, r1)
		assert.Equal(t, s1, r0)
	})

	t.Run("outside", func(t *testing.T) {
		_, _, ok := clip(geom.Point{X: -5, Y: -5}, geom.Point{X: -1, Y: 20})
		assert.False(t, ok)
		_, _, ok = clip(geom.Point{X: -5, Y: 4}, geom.Point{X: 4, Y: -5})
		assert.False(t, ok)
	})
}

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		p0     geom.Point
		dir    geom.Point
		want   geom.Point
		wantOK bool
	}{
		{"right", geom.Point{X: 5, Y: 5}, geom.Point{X: 1, Y: 0}, geom.Point{X: 10, Y: 5}, true},
		{"up", geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: -2}, geom.Point{X: 5, Y: 0}, true},
		{"corner", geom.Point{X: 5, Y: 5}, geom.Point{X: 1, Y: 1}, geom.Point{X: 10, Y: 10}, true},
		{"from outside", geom.Point{X: -5, Y: 5}, geom.Point{X: 1, Y: 0}, geom.Point{X: 10, Y: 5}, true},
		{"beyond exit", geom.Point{X: 12, Y: 5}, geom.Point{X: 1, Y: 0}, geom.Point{}, false},
		{"zero direction", geom.Point{X: 5, Y: 5}, geom.Point{}, geom.Point{}, false},
		{"nan origin", geom.NaN, geom.Point{X: 1, Y: 0}, geom.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := box.project(tt.p0, tt.dir)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, p)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	assert.Equal(t, pts(0, 0, 2, 0, 2, 2), simplify(pts(0, 0, 1, 0, 2, 0, 2, 2)))
	// across the end of the ring
	assert.Equal(t, pts(2, 0, 2, 2, 0, 0), simplify(pts(1, 0, 2, 0, 2, 2, 0, 0)))
	assert.Equal(t, pts(0, 0, 1, 1), simplify(pts(0, 0, 1, 1)))
	assert.Nil(t, simplify(pts(2, 2, 2, 2, 2, 2)))
}

func TestCircumcenter(t *testing.T) {
	// the first triangle vertex decides which side flat vertices go to
	d := &delaunay.Delaunay{
		Points:    pts(0, 0, 10, 0, 20, 0, 5, 5, 10, 1e-10),
		Triangles: []int{3, 0, 1},
	}
	v := &Voronoi{Delaunay: d}

	t.Run("regular", func(t *testing.T) {
		c := v.circumcenter(0, 1, 3)
		assert.InDelta(t, 5, c.X, 1e-12)
		assert.InDelta(t, 0, c.Y, 1e-12)
	})

	t.Run("flat goes far away", func(t *testing.T) {
		c := v.circumcenter(0, 1, 2)
		assert.Equal(t, geom.Point{X: 10, Y: -2e10}, c)
	})

	t.Run("nearly flat collapses to midpoint", func(t *testing.T) {
		c := v.circumcenter(0, 4, 2)
		assert.Equal(t, geom.Point{X: 10, Y: 0}, c)
	})

	t.Run("placeholder vertex", func(t *testing.T) {
		assert.True(t, v.circumcenter(0, delaunay.Empty, 1).IsNaN())
	})
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, sign(3))
	assert.Equal(t, -1.0, sign(-0.5))
	assert.Equal(t, 0.0, sign(0))
	assert.True(t, math.IsNaN(sign(math.NaN())))
}
