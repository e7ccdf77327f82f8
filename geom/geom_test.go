package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lockpattern/geom"
)

// TestDistance covers the basic metric properties: identity, symmetry and a 3-4-5 triangle.
func TestDistance(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"Self", 7, -3, 7, -3, 0},
		{"Pythagorean", 0, 0, 3, 4, 5},
		{"Reversed", 3, 4, 0, 0, 5},
		{"Negative", -1, -1, -4, -5, 5},
		{"Horizontal", 10, 2, 2, 2, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, geom.Distance(tc.x1, tc.y1, tc.x2, tc.y2), 1e-12)
		})
	}
}

// TestWithinCircle_Boundary checks the strict "<" comparison and the radius ≤ 0 rule.
func TestWithinCircle_Boundary(t *testing.T) {
	assert.True(t, geom.WithinCircle(10, 10, 5, 10, 10), "centre is inside")
	assert.True(t, geom.WithinCircle(13, 10, 5, 10, 10), "interior point is inside")
	assert.False(t, geom.WithinCircle(15, 10, 5, 10, 10), "distance == radius is NOT inside")
	assert.False(t, geom.WithinCircle(13, 14, 5, 10, 10), "3-4-5 point sits on the boundary")
	assert.False(t, geom.WithinCircle(20, 10, 5, 10, 10), "far point is outside")

	assert.False(t, geom.WithinCircle(0, 0, 0, 0, 0), "zero radius contains nothing")
	assert.False(t, geom.WithinCircle(0, 0, -3, 0, 0), "negative radius contains nothing")
}

// TestPoint_DistanceTo makes sure the method agrees with the free function.
func TestPoint_DistanceTo(t *testing.T) {
	p := geom.Pt(1.5, -2)
	q := p.Add(3, 4)
	assert.Equal(t, geom.Point{X: 4.5, Y: 2}, q)
	assert.InDelta(t, 5.0, p.DistanceTo(q), 1e-12)
	assert.InDelta(t, p.DistanceTo(q), q.DistanceTo(p), 1e-12)
	assert.False(t, math.IsNaN(p.DistanceTo(p)))
	assert.Zero(t, p.DistanceTo(p))
}
