package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
)

var ErrInvalidBounds = errors.New("invalid bounds")

// BoundingBox is the clip rectangle: Xl/Xr are the left and right edges,
// Yt/Yb the top (smaller y) and bottom (larger y) edges.
type BoundingBox struct {
	Xl, Xr, Yt, Yb float64
}

func NewBoundingBox(xl, xr, yt, yb float64) BoundingBox {
	return BoundingBox{xl, xr, yt, yb}
}

// DefaultBoundingBox is used when no bounds are given.
var DefaultBoundingBox = NewBoundingBox(0, 960, 0, 500)

// Validate rejects boxes with right < left or bottom < top. NaN edges are
// rejected as well.
func (b BoundingBox) Validate() error {
	if !(b.Xr >= b.Xl) || !(b.Yb >= b.Yt) {
		return errors.Wrapf(ErrInvalidBounds, "xl=%v xr=%v yt=%v yb=%v", b.Xl, b.Xr, b.Yt, b.Yb)
	}
	return nil
}

func (b BoundingBox) Center() geom.Point {
	return geom.Point{X: (b.Xl + b.Xr) / 2, Y: (b.Yt + b.Yb) / 2}
}

func (b BoundingBox) Width() float64 {
	return b.Xr - b.Xl
}

func (b BoundingBox) Height() float64 {
	return b.Yb - b.Yt
}

// ring returns the four corners clockwise on screen, starting top-right.
func (b BoundingBox) ring() []geom.Point {
	return []geom.Point{
		{X: b.Xr, Y: b.Yt},
		{X: b.Xr, Y: b.Yb},
		{X: b.Xl, Y: b.Yb},
		{X: b.Xl, Y: b.Yt},
	}
}
