package widget

import (
	"github.com/katalvlaran/lockpattern/connector"
	"github.com/katalvlaran/lockpattern/geom"
	"github.com/katalvlaran/lockpattern/grid"
	"github.com/katalvlaran/lockpattern/pattern"
)

// Result is returned by every pointer event.
// Redraw is always true: any event may have changed what is drawn.
// Outcome is set by OnPointerUp when a gesture was evaluated, None otherwise.
type Result struct {
	Redraw  bool
	Outcome pattern.Outcome
}

// NodeView is one node as the renderer sees it.
type NodeView struct {
	grid.Node
	Center geom.Point
	State  grid.State
}

// RenderModel is an immutable snapshot of everything a rasterizer needs.
//
// Ready is false until a valid surface size arrived; then Nodes is empty and
// nothing should be drawn. Selection and Connectors are in selection order.
type RenderModel struct {
	Ready         bool
	Width, Height int
	HitRadius     int
	Nodes         []NodeView
	Connectors    []connector.Connector
	Selection     []int
}
