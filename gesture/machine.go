// Package gesture turns raw single-pointer events into a node selection.
//
// The Machine has two phases:
//
//	Idle ──down on a node──▶ Dragging ──up──▶ (evaluate) ──▶ Idle
//	  ▲                         │ move: append unselected hit nodes
//	  └──────down off-grid──────┘ (stays Idle, nothing changes)
//
// A release compares the traced indices with a pattern.Secret and reports
// Match or Mismatch. The verdict never changes node states on its own: hosts
// decide whether and for how long to show an error via MarkSelectionAsError,
// and when to clear it via ResetSelection.
//
// A finished selection stays visible until the next gesture starts on a node
// or the host resets it.
package gesture

import (
	"github.com/katalvlaran/lockpattern/grid"
	"github.com/katalvlaran/lockpattern/layout"
	"github.com/katalvlaran/lockpattern/pattern"
)

// Phase is the current phase of the gesture machine.
type Phase int

const (
	// Idle means no pointer is down on the grid.
	Idle Phase = iota
	// Dragging means a gesture started on a node and the pointer is still down.
	Dragging
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}

	return "idle"
}

// Machine tracks node states and the selection of the gesture in progress.
// It is not safe for concurrent use; the widget package serializes access.
// The zero value is an Idle machine with nothing selected.
type Machine struct {
	phase     Phase
	states    grid.States
	selection grid.Selection
}

// Down handles a pointer press at (x, y) on layout l.
// A press on a node starts a new gesture: any finished selection is cleared,
// the node becomes Pressed and is selected first. A press elsewhere leaves
// everything untouched. The returned flag asks the host to redraw.
func (m *Machine) Down(l *layout.Layout, x, y float64) bool {
	idx, ok := grid.HitTest(l, x, y)
	if !ok {
		return true
	}
	if m.selection.Len() > 0 {
		m.clear()
	}
	m.states.Set(idx, grid.Pressed)
	m.selection.Append(idx)
	m.phase = Dragging

	return true
}

// Move handles pointer motion while dragging. A node that is hit and not yet
// selected is appended and Pressed; anything else is a no-op.
func (m *Machine) Move(l *layout.Layout, x, y float64) bool {
	if m.phase != Dragging {
		return true
	}
	idx, ok := grid.HitTest(l, x, y)
	if ok && m.selection.Append(idx) {
		m.states.Set(idx, grid.Pressed)
	}

	return true
}

// Up ends the gesture and compares the traced indices with secret.
// Releasing without an active drag returns pattern.None.
func (m *Machine) Up(secret pattern.Secret) (pattern.Outcome, bool) {
	if m.phase != Dragging {
		return pattern.None, true
	}
	m.phase = Idle

	return secret.Compare(m.selection.Indices()), true
}

// MarkSelectionAsError switches every selected node to the Error state.
func (m *Machine) MarkSelectionAsError() {
	for i := 0; i < m.selection.Len(); i++ {
		idx, _ := m.selection.At(i)
		m.states.Set(idx, grid.Error)
	}
}

// ResetSelection clears the selection, returns all nodes to Normal and
// abandons any drag in progress.
func (m *Machine) ResetSelection() {
	m.clear()
	m.phase = Idle
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Selection returns the selected indices in selection order.
func (m *Machine) Selection() []int {
	return m.selection.Indices()
}

// State returns the visual state of the node at index.
func (m *Machine) State(index int) grid.State {
	return m.states.Get(index)
}

// States returns all nine node states in row-major order.
func (m *Machine) States() [layout.NodeCount]grid.State {
	return m.states.Snapshot()
}

func (m *Machine) clear() {
	m.selection.Clear()
	m.states.Reset()
}
