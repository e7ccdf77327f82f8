package layout

import "github.com/katalvlaran/lockpattern/geom"

// Compute lays the 3×3 grid out on a width×height surface.
// Returns ErrBadSurface if either dimension is below 1.
// The result depends on width and height only, so equal inputs give equal layouts.
// Complexity: O(1).
func Compute(width, height int) (*Layout, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadSurface
	}

	l := &Layout{Width: width, Height: height}
	short := width
	if height > width {
		l.OffsetY = (height - width) / 2
	} else {
		l.OffsetX = (width - height) / 2
		short = height
	}
	l.CellSize = short / Cols
	l.HitRadius = short / radiusDivisor

	half := l.CellSize / 2
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			l.centers[r*Cols+c] = geom.Point{
				X: float64(l.OffsetX + l.CellSize*c + half),
				Y: float64(l.OffsetY + l.CellSize*r + half),
			}
		}
	}

	return l, nil
}

// Center returns the centre of the node with the given pattern index (0–8).
// The boolean is false for an index outside the grid.
func (l *Layout) Center(index int) (geom.Point, bool) {
	if index < 0 || index >= NodeCount {
		return geom.Point{}, false
	}

	return l.centers[index], true
}

// CenterAt returns the centre of the node at (row, col).
func (l *Layout) CenterAt(row, col int) (geom.Point, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return geom.Point{}, false
	}

	return l.centers[row*Cols+col], true
}

// Centers returns a copy of all nine centres in row-major order.
func (l *Layout) Centers() [NodeCount]geom.Point {
	return l.centers
}

// Bounds returns the drawn square as (minX, minY, side).
func (l *Layout) Bounds() (x, y, side int) {
	return l.OffsetX, l.OffsetY, l.CellSize * Cols
}

// SameSize reports whether l was computed for a width×height surface.
// A nil layout matches nothing.
func (l *Layout) SameSize(width, height int) bool {
	return l != nil && l.Width == width && l.Height == height
}

// Equal reports whether two layouts place every node identically.
func (l *Layout) Equal(other *Layout) bool {
	if l == nil || other == nil {
		return l == other
	}

	return *l == *other
}
