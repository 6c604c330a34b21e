package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/path"
	"github.com/0x0FACED/go-delaunay/pkg/svg"
)

// surface receives the drawing layers of one image and writes them out.
type surface interface {
	fill(draw func(path.Context), color string)
	stroke(draw func(path.Context), color string, width float64)
	save(name string) error
}

func newSurface(format string, width, height float64) surface {
	if format == "png" {
		return newPNGSurface(width, height)
	}
	return newSVGSurface(width, height)
}

type svgSurface struct {
	doc *svg.Document
}

func newSVGSurface(width, height float64) *svgSurface {
	doc := svg.NewDocument(width, height)
	doc.Background = "white"
	return &svgSurface{doc: doc}
}

func (s *svgSurface) fill(draw func(path.Context), color string) {
	p := path.New()
	draw(p)
	s.doc.AddPath(p.String(), svg.Style{Fill: color})
}

func (s *svgSurface) stroke(draw func(path.Context), color string, width float64) {
	p := path.New()
	draw(p)
	s.doc.AddPath(p.String(), svg.Style{Stroke: color, StrokeWidth: width})
}

func (s *svgSurface) save(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer f.Close()

	if _, err := s.doc.WriteTo(f); err != nil {
		return err
	}
	return errors.Wrap(f.Close(), "close output")
}

type pngSurface struct {
	dc     *gg.Context
	canvas *path.Canvas
}

func newPNGSurface(width, height float64) *pngSurface {
	dc := gg.NewContext(int(width), int(height))
	dc.SetColor(color.White)
	dc.Clear()
	return &pngSurface{dc: dc, canvas: path.NewCanvas(dc)}
}

func (s *pngSurface) fill(draw func(path.Context), color string) {
	draw(s.canvas)
	s.dc.SetHexColor(color)
	s.dc.Fill()
}

func (s *pngSurface) stroke(draw func(path.Context), color string, width float64) {
	draw(s.canvas)
	s.dc.SetHexColor(color)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

func (s *pngSurface) save(name string) error {
	return errors.Wrap(s.dc.SavePNG(name), "save png")
}

// report prints where an image went and optionally shows it inline in
// terminals that speak the iTerm image protocol.
func report(name string, show bool, details string) error {
	fmt.Println(aurora.Green("wrote"), aurora.Bold(name), aurora.Faint(details))
	if !show {
		return nil
	}
	return errors.Wrap(imgcat.CatFile(name, os.Stdout), "imgcat")
}
