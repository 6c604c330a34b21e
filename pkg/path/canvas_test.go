package path

import (
	"math"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

func alphaAt(c *Canvas, x, y int) uint32 {
	_, _, _, a := c.Image().At(x, y).RGBA()
	return a
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(gg.NewContext(20, 20))

	c.MoveTo(geom.Point{X: 2, Y: 2})
	c.LineTo(geom.Point{X: 10, Y: 2})
	c.LineTo(geom.Point{X: 10, Y: 10})
	c.LineTo(geom.Point{X: 2, Y: 10})
	c.ClosePath()
	c.SetRGB(0, 0, 0)
	c.Fill()

	assert.Equal(t, uint32(0xffff), alphaAt(c, 5, 5))
	assert.Equal(t, uint32(0), alphaAt(c, 15, 15))
}

func TestCanvasArcAndRect(t *testing.T) {
	c := NewCanvas(gg.NewContext(20, 20))

	c.Arc(geom.Point{X: 5, Y: 5}, 3, 0, 2*math.Pi)
	c.Arc(geom.Point{X: 15, Y: 5}, 0, 0, 2*math.Pi)
	c.Rect(geom.Point{X: 12, Y: 12}, 6, 6)
	c.SetRGB(0, 0, 0)
	c.Fill()

	assert.Equal(t, uint32(0xffff), alphaAt(c, 5, 5))
	assert.Equal(t, uint32(0xffff), alphaAt(c, 15, 15))
	// nothing joins the circle and the rectangle
	assert.Equal(t, uint32(0), alphaAt(c, 10, 10))
	assert.Equal(t, uint32(0), alphaAt(c, 15, 5))
}
