package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/path"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

type renderCmd struct {
	cmd *kingpin.CmdClause

	input   *string
	points  *int
	grid    *bool
	seed    *int64
	width   *float64
	height  *float64
	format  *string
	output  *string
	imgcat  *bool
	radius  *float64
	fill    *bool
	mesh    *bool
	cells   *bool
	hull    *bool
	sites   *bool
	padding *float64
}

func newRenderCmd(app *kingpin.Application) *renderCmd {
	c := &renderCmd{cmd: app.Command("render", "Render the triangulation and Voronoi diagram of a point set.")}
	c.input = c.cmd.Flag("input", "Points file: .svg, or text with one \"x y\" per line.").Short('i').ExistingFile()
	c.points = c.cmd.Flag("points", "Number of generated points when no input is given.").Short('n').Default("200").Int()
	c.grid = c.cmd.Flag("grid", "Generate grid points instead of random ones.").Bool()
	c.seed = c.cmd.Flag("seed", "Seed for random points.").Default("1").Int64()
	c.width = c.cmd.Flag("width", "Image width.").Default("960").Float64()
	c.height = c.cmd.Flag("height", "Image height.").Default("500").Float64()
	c.format = c.cmd.Flag("format", "Output format.").Default("svg").Enum("svg", "png")
	c.output = c.cmd.Flag("output", "Output file, a generated name by default.").Short('o').String()
	c.imgcat = c.cmd.Flag("imgcat", "Show the result in the terminal (png only).").Bool()
	c.radius = c.cmd.Flag("radius", "Site radius.").Default("2").Float64()
	c.fill = c.cmd.Flag("fill", "Colour the Voronoi cells.").Bool()
	c.mesh = c.cmd.Flag("delaunay", "Draw Delaunay edges.").Default("true").Bool()
	c.cells = c.cmd.Flag("voronoi", "Draw Voronoi edges.").Default("true").Bool()
	c.hull = c.cmd.Flag("hull", "Draw the convex hull.").Bool()
	c.sites = c.cmd.Flag("sites", "Draw the sites.").Default("true").Bool()
	c.padding = c.cmd.Flag("padding", "Margin around loaded points.").Default("10").Float64()
	return c
}

func (c *renderCmd) run(log *logger.ZapLogger) error {
	points, bounds, err := c.load()
	if err != nil {
		return err
	}

	d := delaunay.New(points, delaunay.WithLogger(log.Zap()))
	v, err := voronoi.New(d, voronoi.WithBounds(bounds), voronoi.WithLogger(log.Zap()))
	if err != nil {
		return err
	}
	log.Info("[render] diagram ready",
		zap.Int("points", len(d.Points)),
		zap.Int("triangles", len(d.Triangles)/3),
		zap.Int("hull", len(d.Hull)),
	)

	out := *c.output
	if out == "" {
		out = defaultOutput(*c.format)
	}

	s := newSurface(*c.format, bounds.Width(), bounds.Height())
	c.draw(s, d, v)
	if err := s.save(out); err != nil {
		return err
	}

	details := fmt.Sprintf("(%d points, %d triangles)", len(d.Points), len(d.Triangles)/3)
	return report(out, *c.imgcat && *c.format == "png", details)
}

// load returns the sites and the clip box. Loaded points are shifted so that
// their bounds plus padding start at the origin.
func (c *renderCmd) load() ([]geom.Point, voronoi.BoundingBox, error) {
	if *c.input == "" {
		var points []geom.Point
		if *c.grid {
			points = gridPoints(*c.points, *c.width, *c.height)
		} else {
			points = randomPoints(rand.New(rand.NewSource(*c.seed)), *c.points, *c.width, *c.height)
		}
		return points, voronoi.NewBoundingBox(0, *c.width, 0, *c.height), nil
	}

	points, err := readPoints(*c.input)
	if err != nil {
		return nil, voronoi.BoundingBox{}, err
	}
	if len(points) == 0 {
		return nil, voronoi.NewBoundingBox(0, *c.width, 0, *c.height), nil
	}

	min, max := geom.Bounds(points)
	pad := math.Max(*c.padding, 0)
	for i := range points {
		points[i].X += pad - min.X
		points[i].Y += pad - min.Y
	}
	return points, voronoi.NewBoundingBox(0, max.X-min.X+2*pad, 0, max.Y-min.Y+2*pad), nil
}

func (c *renderCmd) draw(s surface, d *delaunay.Delaunay, v *voronoi.Voronoi) {
	if *c.fill {
		for i := range v.CellPolygons() {
			s.fill(func(ctx path.Context) { v.RenderCell(i, ctx) }, cellColor(i))
		}
	}
	if *c.mesh {
		s.stroke(d.Render, "#9aa5b1", 0.5)
	}
	if *c.cells {
		s.stroke(v.Render, "#1f2933", 1)
	}
	if *c.hull {
		s.stroke(d.RenderHull, "#d64545", 1.5)
	}
	s.stroke(v.RenderBounds, "#1f2933", 1)
	if *c.sites {
		s.fill(func(ctx path.Context) { d.RenderPoints(ctx, *c.radius) }, "#000000")
	}
}

// cellColor spreads hues by the golden angle so neighbouring indices differ.
func cellColor(i int) string {
	h := math.Mod(float64(i)*137.508, 360)
	return colorful.Hsv(h, 0.35, 0.95).Hex()
}
