package grid

import (
	"github.com/katalvlaran/lockpattern/geom"
	"github.com/katalvlaran/lockpattern/layout"
)

// States holds the visual state of every node. The zero value is all Normal.
type States struct {
	s [layout.NodeCount]State
}

// Set assigns state to the node at index. Out-of-range indices and unknown
// states are ignored.
func (st *States) Set(index int, state State) {
	if !ValidIndex(index) || !state.Valid() {
		return
	}
	st.s[index] = state
}

// Get returns the state of the node at index (Normal for an invalid index).
func (st *States) Get(index int) State {
	if !ValidIndex(index) {
		return Normal
	}

	return st.s[index]
}

// Reset returns every node to Normal.
func (st *States) Reset() {
	st.s = [layout.NodeCount]State{}
}

// Snapshot returns a copy of all nine states in row-major order.
func (st *States) Snapshot() [layout.NodeCount]State {
	return st.s
}

// HitTest returns the index of the first node, in row-major order, whose hit
// circle strictly contains (x, y). With a nil layout nothing is hit.
//
// The layout sizes HitRadius to at most half a cell, so circles do not
// overlap; if they ever did, the first node in scan order would win.
// Complexity: O(9).
func HitTest(l *layout.Layout, x, y float64) (int, bool) {
	if l == nil {
		return 0, false
	}
	r := float64(l.HitRadius)
	centers := l.Centers()
	for i, c := range centers {
		if geom.WithinCircle(x, y, r, c.X, c.Y) {
			return i, true
		}
	}

	return 0, false
}
