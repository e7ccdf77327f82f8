package layout

import (
	"errors"

	"github.com/katalvlaran/lockpattern/geom"
)

// ErrBadSurface indicates a surface with a non-positive width or height.
var ErrBadSurface = errors.New("layout: surface width and height must be at least 1")

const (
	// Rows is the number of node rows in the pattern grid.
	Rows = 3
	// Cols is the number of node columns in the pattern grid.
	Cols = 3
	// NodeCount is the total number of nodes (Rows×Cols).
	NodeCount = Rows * Cols

	// radiusDivisor relates the shorter surface side to the hit radius.
	radiusDivisor = 12
)

// Layout is the immutable placement of the nine nodes on one surface size.
//
// Width and Height are the surface dimensions the layout was computed for.
// OffsetX/OffsetY shift the drawn square to the centre of the longer axis.
// CellSize is the side of one grid cell; HitRadius is shared by all nodes and
// is also the outer radius the renderer draws.
type Layout struct {
	Width, Height    int
	OffsetX, OffsetY int
	CellSize         int
	HitRadius        int

	centers [NodeCount]geom.Point
}
