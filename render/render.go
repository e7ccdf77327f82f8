// Package render turns a widget.RenderModel into drawing calls on any
// Rasterizer: each node as an outer ring plus an inner dot, then a line and a
// filled arrowhead for every connector.
//
// Sizes derive from the hit radius R, as on the classic widget:
//
//	outer ring radius R, inner dot radius R/6
//	ring stroke R/9 (Normal) or R/6 (Pressed, Error)
//	connector stroke R/9
//
// Widths never drop below 1 so tiny surfaces still show something.
package render

import (
	"image/color"

	"github.com/katalvlaran/lockpattern/geom"
	"github.com/katalvlaran/lockpattern/grid"
	"github.com/katalvlaran/lockpattern/widget"
)

// Rasterizer executes primitive drawing commands. Implementations own the
// pixels; the render pass only decides what to draw and in which order.
type Rasterizer interface {
	// StrokeCircle outlines a circle of the given radius.
	StrokeCircle(center geom.Point, radius, width float64, c color.Color)
	// Line strokes a straight segment.
	Line(from, to geom.Point, width float64, c color.Color)
	// FillPolygon fills the closed polygon through pts.
	FillPolygon(pts []geom.Point, c color.Color)
}

// Palette is the outer/inner colour pair of one node state.
type Palette struct {
	Outer, Inner color.Color
}

// Theme holds the colours of every state plus the connector colour.
type Theme struct {
	Background color.Color
	Normal     Palette
	Pressed    Palette
	Error      Palette
	Connector  color.Color
}

// DefaultTheme returns the grey/blue/red scheme of the classic widget.
func DefaultTheme() Theme {
	pressedInner := color.RGBA{R: 0x05, G: 0x96, B: 0xf6, A: 0xff}

	return Theme{
		Background: color.White,
		Normal: Palette{
			Outer: color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff},
			Inner: color.RGBA{R: 0x92, G: 0x92, B: 0x92, A: 0xff},
		},
		Pressed: Palette{
			Outer: color.RGBA{R: 0x8c, G: 0xba, B: 0xd8, A: 0xff},
			Inner: pressedInner,
		},
		Error: Palette{
			Outer: color.RGBA{R: 0x90, G: 0x10, B: 0x32, A: 0xff},
			Inner: color.RGBA{R: 0xea, G: 0x09, B: 0x45, A: 0xff},
		},
		Connector: pressedInner,
	}
}

// PaletteFor returns the palette of state s (Normal for unknown states).
func (t Theme) PaletteFor(s grid.State) Palette {
	switch s {
	case grid.Pressed:
		return t.Pressed
	case grid.Error:
		return t.Error
	default:
		return t.Normal
	}
}

// Metrics are the radius-derived sizes used by Draw.
type Metrics struct {
	OuterRadius     float64
	InnerRadius     float64
	NormalStroke    float64
	EmphasisStroke  float64
	ConnectorStroke float64
}

// MetricsFor derives drawing sizes from a hit radius.
func MetricsFor(hitRadius int) Metrics {
	return Metrics{
		OuterRadius:     float64(hitRadius),
		InnerRadius:     atLeastOne(hitRadius / 6),
		NormalStroke:    atLeastOne(hitRadius / 9),
		EmphasisStroke:  atLeastOne(hitRadius / 6),
		ConnectorStroke: atLeastOne(hitRadius / 9),
	}
}

// Draw renders m onto r: nodes first, then connector lines with their arrows.
// A model that is not Ready draws nothing.
// Complexity: O(9 + connectors).
func Draw(m widget.RenderModel, r Rasterizer, t Theme) {
	if !m.Ready {
		return
	}
	mt := MetricsFor(m.HitRadius)

	for _, n := range m.Nodes {
		p := t.PaletteFor(n.State)
		stroke := mt.NormalStroke
		if n.State != grid.Normal {
			stroke = mt.EmphasisStroke
		}
		r.StrokeCircle(n.Center, mt.OuterRadius, stroke, p.Outer)
		r.StrokeCircle(n.Center, mt.InnerRadius, stroke, p.Inner)
	}

	for _, c := range m.Connectors {
		r.Line(c.From, c.To, mt.ConnectorStroke, t.Connector)
		r.FillPolygon(c.Arrow(), t.Connector)
	}
}

func atLeastOne(v int) float64 {
	if v < 1 {
		return 1
	}

	return float64(v)
}
