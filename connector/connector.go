// Package connector derives the line segment and arrowhead drawn between each
// pair of consecutively selected nodes.
//
// For a pair (from, to) at distance d, with arrowHeight = HitRadius/ArrowDivisor:
//
//	sinB = (to.X − from.X)/d        cosB = (to.Y − from.Y)/d
//	h    = d − arrowHeight − Clearance·HitRadius
//	l    = arrowHeight·tan(AngleDegrees)
//	Tip  = from + (h + arrowHeight)·(sinB, cosB)
//	base = from + h·(sinB, cosB)
//	Left = base + (−l·cosB,  l·sinB)     Right = base + (l·cosB, −l·sinB)
//
// The tip therefore sits Clearance·HitRadius short of the destination centre,
// just outside the destination node's outer circle. Coincident centres
// (d == 0) have no direction and are skipped.
//
// Connectors are recomputed for every render and never stored.
package connector

import (
	"math"

	"github.com/katalvlaran/lockpattern/geom"
	"github.com/katalvlaran/lockpattern/layout"
)

// Options tunes the arrowhead.
//
// Fields:
//   - ArrowDivisor: arrow height is HitRadius/ArrowDivisor (integer division). Must be ≥ 1.
//   - AngleDegrees: half-angle of the arrowhead, in (0, 90).
//   - Clearance: distance kept between the tip and the destination centre, in hit radii.
type Options struct {
	ArrowDivisor int
	AngleDegrees float64
	Clearance    float64
}

// DefaultOptions returns the classic look: a HitRadius/5 arrow with a 38° half-angle,
// stopping 1.1 radii short of the destination centre.
func DefaultOptions() Options {
	return Options{
		ArrowDivisor: 5,
		AngleDegrees: 38,
		Clearance:    1.1,
	}
}

// Valid reports whether every field is usable.
func (o Options) Valid() bool {
	return o.ArrowDivisor >= 1 &&
		o.AngleDegrees > 0 && o.AngleDegrees < 90 &&
		o.Clearance >= 0
}

// ArrowHeight returns the arrow height for a given hit radius.
func (o Options) ArrowHeight(hitRadius int) float64 {
	if o.ArrowDivisor < 1 {
		return 0
	}

	return float64(hitRadius / o.ArrowDivisor)
}

// Connector is the geometry joining two selected nodes: the segment between
// their centres and a filled arrowhead triangle pointing at the destination.
type Connector struct {
	FromIndex, ToIndex int
	From, To           geom.Point

	Tip, Left, Right geom.Point
}

// Arrow returns the arrowhead as a closed triangle: tip, left, right.
func (c Connector) Arrow() []geom.Point {
	return []geom.Point{c.Tip, c.Left, c.Right}
}

// Between computes the connector from one centre to another.
// It returns false when the centres coincide.
// Complexity: O(1).
func Between(from, to geom.Point, hitRadius int, opts Options) (Connector, bool) {
	d := from.DistanceTo(to)
	if d == 0 {
		return Connector{}, false
	}

	arrowHeight := opts.ArrowHeight(hitRadius)
	sinB := (to.X - from.X) / d
	cosB := (to.Y - from.Y) / d
	h := d - arrowHeight - opts.Clearance*float64(hitRadius)
	l := arrowHeight * math.Tan(opts.AngleDegrees*math.Pi/180)
	a := l * sinB
	b := l * cosB

	base := from.Add(h*sinB, h*cosB)

	return Connector{
		From:  from,
		To:    to,
		Tip:   from.Add((h+arrowHeight)*sinB, (h+arrowHeight)*cosB),
		Left:  base.Add(-b, a),
		Right: base.Add(b, -a),
	}, true
}

// Build returns one connector per consecutive pair of indices, in selection
// order. Pairs with an invalid index or coincident centres are skipped; a nil
// layout or fewer than two indices yields nil.
// Complexity: O(len(indices)).
func Build(l *layout.Layout, indices []int, opts Options) []Connector {
	if l == nil || len(indices) < 2 {
		return nil
	}

	out := make([]Connector, 0, len(indices)-1)
	for i := 0; i+1 < len(indices); i++ {
		from, ok1 := l.Center(indices[i])
		to, ok2 := l.Center(indices[i+1])
		if !ok1 || !ok2 {
			continue
		}
		c, ok := Between(from, to, l.HitRadius, opts)
		if !ok {
			continue
		}
		c.FromIndex, c.ToIndex = indices[i], indices[i+1]
		out = append(out, c)
	}

	return out
}
