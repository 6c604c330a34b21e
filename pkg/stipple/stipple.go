// Package stipple places dots over an image so that their density follows
// its darkness (weighted Voronoi stippling). Each round moves every dot
// towards the darkness-weighted centroid of its Voronoi cell.
package stipple

import (
	"context"
	"image"
	"math"
	"math/rand"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrEmptyImage = errors.New("empty image")

type Config struct {
	// Points is the number of dots.
	Points int
	// Iterations is the number of relaxation rounds.
	Iterations int
	// Seed makes sampling and wiggling reproducible.
	Seed int64
	// OnIteration, if set, is called after every round with the current dots.
	// The slice is reused between rounds.
	OnIteration func(k int, points []geom.Point)

	Logger *zap.Logger
}

func DefaultConfig() Config {
	return Config{
		Points:     2000,
		Iterations: 80,
		Seed:       1,
	}
}

// Density returns the darkness of every pixel in [0, 1], row by row.
func Density(img image.Image) (data []float64, width, height int) {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	width, height = b.Dx(), b.Dy()

	data = make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// NRGBA: all three channels carry the luminance after Grayscale
			lum := gray.Pix[y*gray.Stride+x*4]
			data[y*width+x] = 1 - float64(lum)/255
		}
	}
	return data, width, height
}

// Run stipples img. The context is checked between rounds.
func Run(ctx context.Context, img image.Image, cfg Config) ([]geom.Point, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	data, width, height := Density(img)
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}
	if cfg.Points <= 0 {
		return nil, errors.Errorf("points must be positive, got %d", cfg.Points)
	}

	rnd := rand.New(rand.NewSource(cfg.Seed))
	points := sample(rnd, data, width, height, cfg.Points)

	log.Info("[stipple] started",
		zap.Int("points", len(points)),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("iterations", cfg.Iterations),
	)

	centroids := make([]geom.Point, len(points))
	weights := make([]float64, len(points))

	for k := 0; k < cfg.Iterations; k++ {
		if err := ctx.Err(); err != nil {
			return points, errors.Wrapf(err, "stipple round %d", k)
		}

		d := delaunay.New(points)

		for i := range centroids {
			centroids[i] = geom.Point{}
			weights[i] = 0
		}

		i := 0
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				w := data[y*width+x]
				px := geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
				if c := d.FindFrom(px, i); c >= 0 {
					i = c
				}
				weights[i] += w
				centroids[i].X += w * px.X
				centroids[i].Y += w * px.Y
			}
		}

		// overshoot towards the centroid and wiggle a little so dots do not
		// get stuck
		wiggle := math.Pow(float64(k+1), -0.8) * 10
		for i, p0 := range points {
			p1 := p0
			if weights[i] > 0 {
				p1 = geom.Point{X: centroids[i].X / weights[i], Y: centroids[i].Y / weights[i]}
			}
			points[i] = geom.Point{
				X: clamp(p0.X+(p1.X-p0.X)*1.8+(rnd.Float64()-0.5)*wiggle, 0, float64(width)),
				Y: clamp(p0.Y+(p1.Y-p0.Y)*1.8+(rnd.Float64()-0.5)*wiggle, 0, float64(height)),
			}
		}

		log.Debug("[stipple] round done", zap.Int("k", k), zap.Float64("wiggle", wiggle))
		if cfg.OnIteration != nil {
			cfg.OnIteration(k, points)
		}
	}

	log.Info("[stipple] finished", zap.Int("points", len(points)))
	return points, nil
}

// sample draws n pixels with probability proportional to their darkness,
// giving up on a dot after 30 rejected candidates.
func sample(rnd *rand.Rand, data []float64, width, height, n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		for j := 0; j < 30; j++ {
			x := rnd.Intn(width)
			y := rnd.Intn(height)
			points[i] = geom.Point{X: float64(x), Y: float64(y)}
			if rnd.Float64() < data[y*width+x] {
				break
			}
		}
	}
	return points
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
