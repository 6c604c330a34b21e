package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/path"
	"github.com/0x0FACED/go-delaunay/pkg/stipple"
)

type stippleCmd struct {
	cmd *kingpin.CmdClause

	image      *string
	width      *int
	points     *int
	iterations *int
	seed       *int64
	radius     *float64
	format     *string
	output     *string
	imgcat     *bool
}

func newStippleCmd(app *kingpin.Application) *stippleCmd {
	def := stipple.DefaultConfig()
	c := &stippleCmd{cmd: app.Command("stipple", "Redraw an image as weighted Voronoi stippling.")}
	c.image = c.cmd.Arg("image", "Source image.").Required().ExistingFile()
	c.width = c.cmd.Flag("width", "Resize the image to this width first, 0 keeps it.").Default("0").Int()
	c.points = c.cmd.Flag("points", "Number of dots.").Short('n').Default(fmt.Sprint(def.Points)).Int()
	c.iterations = c.cmd.Flag("iterations", "Relaxation rounds.").Default(fmt.Sprint(def.Iterations)).Int()
	c.seed = c.cmd.Flag("seed", "Seed for sampling.").Default(fmt.Sprint(def.Seed)).Int64()
	c.radius = c.cmd.Flag("radius", "Dot radius.").Default("1").Float64()
	c.format = c.cmd.Flag("format", "Output format.").Default("png").Enum("svg", "png")
	c.output = c.cmd.Flag("output", "Output file, a generated name by default.").Short('o').String()
	c.imgcat = c.cmd.Flag("imgcat", "Show the result in the terminal (png only).").Bool()
	return c
}

func (c *stippleCmd) run(log *logger.ZapLogger) error {
	img, err := imaging.Open(*c.image)
	if err != nil {
		return errors.Wrap(err, "open image")
	}
	if *c.width > 0 {
		img = imaging.Resize(img, *c.width, 0, imaging.Lanczos)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := stipple.Config{
		Points:     *c.points,
		Iterations: *c.iterations,
		Seed:       *c.seed,
		Logger:     log.Zap(),
		OnIteration: func(k int, _ []geom.Point) {
			if (k+1)%10 == 0 {
				log.Debug("[stipple] progress", zap.Int("round", k+1))
			}
		},
	}
	points, err := stipple.Run(ctx, img, cfg)
	if err != nil {
		return err
	}

	out := *c.output
	if out == "" {
		out = defaultOutput(*c.format)
	}

	b := img.Bounds()
	s := newSurface(*c.format, float64(b.Dx()), float64(b.Dy()))
	d := delaunay.New(points)
	s.fill(func(ctx path.Context) { d.RenderPoints(ctx, *c.radius) }, "#000000")
	if err := s.save(out); err != nil {
		return err
	}

	return report(out, *c.imgcat && *c.format == "png", fmt.Sprintf("(%d dots)", len(points)))
}
