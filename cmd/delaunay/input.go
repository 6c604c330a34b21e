package main

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/svg"
)

// readPoints loads sites from an .svg file (circles, polygons) or from a text
// file with one "x y" or "x,y" pair per line. Blank lines and lines starting
// with # are ignored.
func readPoints(name string) ([]geom.Point, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open points")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return svg.ReadPoints(f)
	}
	return parsePoints(f)
}

func parsePoints(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want two coordinates, got %q", line, text)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, errors.Wrap(sc.Err(), "read points")
}

func randomPoints(rnd *rand.Rand, n int, width, height float64) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{X: rnd.Float64() * width, Y: rnd.Float64() * height}
	}
	return points
}

// gridPoints puts n sites at the centres of a near square grid.
func gridPoints(n int, width, height float64) []geom.Point {
	if n <= 0 {
		return nil
	}
	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows
	dx, dy := width/float64(cols), height/float64(rows)

	points := make([]geom.Point, 0, n)
	for i := 0; i < rows && len(points) < n; i++ {
		for j := 0; j < cols && len(points) < n; j++ {
			points = append(points, geom.Point{X: dx/2 + float64(j)*dx, Y: dy/2 + float64(i)*dy})
		}
	}
	return points
}
