// Package ggraster implements render.Rasterizer on top of github.com/fogleman/gg
// and writes finished frames as PNG.
//
// Frame draws a complete widget.RenderModel (background, nodes, connectors and
// optional index labels) into a new Canvas; Export does the same and saves
// the result to a file.
//
// Errors:
//
//   - ErrEmptyModel: the model has no layout yet, so there is nothing to draw.
package ggraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/katalvlaran/lockpattern/geom"
	"github.com/katalvlaran/lockpattern/render"
	"github.com/katalvlaran/lockpattern/widget"
)

// ErrEmptyModel indicates a render model that is not Ready.
var ErrEmptyModel = errors.New("ggraster: render model has no layout")

// Options controls Frame and Export.
type Options struct {
	Theme render.Theme
	// Labels prints each node's pattern index next to it.
	Labels bool
	// LabelColor is used for index labels.
	LabelColor color.Color
	// FontSize in points; 0 picks HitRadius/2.
	FontSize float64
}

// DefaultOptions returns the default theme without labels.
func DefaultOptions() Options {
	return Options{
		Theme:      render.DefaultTheme(),
		LabelColor: color.Black,
	}
}

// Canvas is a gg drawing context that satisfies render.Rasterizer.
type Canvas struct {
	dc *gg.Context
}

var _ render.Rasterizer = (*Canvas)(nil)

// New allocates a width×height canvas.
func New(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetLineCapRound()

	return &Canvas{dc: dc}
}

// Clear fills the whole canvas with c.
func (cv *Canvas) Clear(c color.Color) {
	cv.dc.SetColor(c)
	cv.dc.Clear()
}

// StrokeCircle outlines a circle.
func (cv *Canvas) StrokeCircle(center geom.Point, radius, width float64, c color.Color) {
	cv.dc.SetColor(c)
	cv.dc.SetLineWidth(width)
	cv.dc.DrawCircle(center.X, center.Y, radius)
	cv.dc.Stroke()
}

// Line strokes a segment.
func (cv *Canvas) Line(from, to geom.Point, width float64, c color.Color) {
	cv.dc.SetColor(c)
	cv.dc.SetLineWidth(width)
	cv.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	cv.dc.Stroke()
}

// FillPolygon fills a closed polygon. Fewer than three points draw nothing.
func (cv *Canvas) FillPolygon(pts []geom.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	cv.dc.SetColor(c)
	cv.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		cv.dc.LineTo(p.X, p.Y)
	}
	cv.dc.ClosePath()
	cv.dc.Fill()
}

// Label draws text centred on p using face.
func (cv *Canvas) Label(p geom.Point, text string, face font.Face, c color.Color) {
	cv.dc.SetFontFace(face)
	cv.dc.SetColor(c)
	cv.dc.DrawStringAnchored(text, p.X, p.Y, 0.5, 0.5)
}

// Image returns the backing image.
func (cv *Canvas) Image() image.Image {
	return cv.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (cv *Canvas) EncodePNG(w io.Writer) error {
	return cv.dc.EncodePNG(w)
}

// SavePNG writes the canvas as PNG to path.
func (cv *Canvas) SavePNG(path string) error {
	return cv.dc.SavePNG(path)
}

// Frame renders m into a new canvas of the model's surface size.
func Frame(m widget.RenderModel, opts Options) (*Canvas, error) {
	if !m.Ready {
		return nil, ErrEmptyModel
	}
	cv := New(m.Width, m.Height)
	if opts.Theme.Background != nil {
		cv.Clear(opts.Theme.Background)
	}
	render.Draw(m, cv, opts.Theme)

	if opts.Labels {
		size := opts.FontSize
		if size <= 0 {
			size = float64(m.HitRadius) / 2
		}
		face, err := monoFace(size)
		if err != nil {
			return nil, err
		}
		defer face.Close()
		labelColor := opts.LabelColor
		if labelColor == nil {
			labelColor = color.Black
		}
		// Labels sit below-right of the ring so they never cover the inner dot.
		off := float64(m.HitRadius) * 1.25
		for _, n := range m.Nodes {
			cv.Label(n.Center.Add(off, off), strconv.Itoa(n.Index), face, labelColor)
		}
	}

	return cv, nil
}

// Export renders m and saves it as a PNG file at path.
func Export(m widget.RenderModel, path string, opts Options) error {
	cv, err := Frame(m, opts)
	if err != nil {
		return err
	}
	if err := cv.SavePNG(path); err != nil {
		return fmt.Errorf("ggraster: save %s: %w", path, err)
	}

	return nil
}

// monoFace parses the bundled Go Mono font at the given point size.
func monoFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggraster: parse font: %w", err)
	}

	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
