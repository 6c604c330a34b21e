package main

import (
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
)

// Command line front end: `render` draws meshes of point sets, `stipple`
// turns an image into a dot drawing.
func main() {
	app := kingpin.New("delaunay", "Delaunay triangulations and Voronoi diagrams as SVG or PNG.")
	debug := app.Flag("debug", "Verbose logging.").Bool()

	render := newRenderCmd(app)
	stipple := newStippleCmd(app)

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := zapcore.InfoLevel
	if *debug {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsole(os.Stderr, level)
	defer log.Sync()

	switch cmd {
	case render.cmd.FullCommand():
		app.FatalIfError(render.run(log), "render")
	case stipple.cmd.FullCommand():
		app.FatalIfError(stipple.run(log), "stipple")
	}
}

func init() {
	// names for unnamed outputs should differ between runs
	petname.NonDeterministicMode()
}

// defaultOutput names an output file when none was given.
func defaultOutput(format string) string {
	return petname.Generate(2, "-") + "." + format
}
