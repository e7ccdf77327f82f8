// Package grid models the nine pattern nodes: their identity, their visual
// state and the ordered selection traced by a gesture.
//
// Nodes are addressed by their stable pattern index (row-major, 0–8); no node
// objects are shared between collections, so the selection only stores indices.
package grid

import "github.com/katalvlaran/lockpattern/layout"

// State is the visual state of one node. Exactly one state holds at a time.
type State int

const (
	// Normal is the idle, unselected look.
	Normal State = iota
	// Pressed marks a node that is part of the current selection.
	Pressed
	// Error marks a selected node after the host flagged a wrong pattern.
	Error
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Pressed:
		return "pressed"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of Normal, Pressed or Error.
func (s State) Valid() bool {
	return s >= Normal && s <= Error
}

// Node identifies one grid position. Index = Row*3 + Col.
type Node struct {
	Row, Col int
	Index    int
}

// NodeAt returns the node with the given pattern index.
// The boolean is false when index is outside 0–8.
func NodeAt(index int) (Node, bool) {
	if !ValidIndex(index) {
		return Node{}, false
	}

	return Node{Row: index / layout.Cols, Col: index % layout.Cols, Index: index}, true
}

// Nodes returns all nine nodes in row-major order.
func Nodes() []Node {
	out := make([]Node, 0, layout.NodeCount)
	for i := 0; i < layout.NodeCount; i++ {
		n, _ := NodeAt(i)
		out = append(out, n)
	}

	return out
}

// ValidIndex reports whether index names a node of the 3×3 grid.
func ValidIndex(index int) bool {
	return index >= 0 && index < layout.NodeCount
}
