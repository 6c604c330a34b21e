package svg

import (
	"io"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// ReadPoints collects the centers of <circle> elements and the vertices of
// <polygon> and <polyline> elements, in document order.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var points []geom.Point
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle", "ellipse":
			x, err := parseAttr(el, "cx")
			if err != nil {
				return err
			}
			y, err := parseAttr(el, "cy")
			if err != nil {
				return err
			}
			points = append(points, geom.Point{X: x, Y: y})
		case "polygon", "polyline":
			pts, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "%s points", el.Name)
			}
			points = append(points, pts...)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}

// ReadPaths returns the d attribute of every <path> element.
func ReadPaths(r io.Reader) ([]string, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var paths []string
	for _, el := range root.FindAll("path") {
		paths = append(paths, el.Attributes["d"])
	}
	return paths, nil
}

func parseAttr(el *svgparser.Element, name string) (float64, error) {
	s, ok := el.Attributes[name]
	if !ok {
		// SVG defaults missing coordinates to 0
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s %s", el.Name, name)
	}
	return v, nil
}

// parsePointList parses "x,y x,y ..." and "x y x y ..." lists.
func parsePointList(s string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}

	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "y value %q", fields[i+1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}
