package gesture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lockpattern/gesture"
	"github.com/katalvlaran/lockpattern/grid"
	"github.com/katalvlaran/lockpattern/layout"
	"github.com/katalvlaran/lockpattern/pattern"
)

// mustLayout builds a 300×300 layout: cell 100, radius 25, centres at 50/150/250.
func mustLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.Compute(300, 300)
	require.NoError(t, err)

	return l
}

// center returns the centre of node idx on l.
func center(t *testing.T, l *layout.Layout, idx int) (float64, float64) {
	t.Helper()
	c, ok := l.Center(idx)
	require.True(t, ok)

	return c.X, c.Y
}

// trace drives a full gesture through the given nodes, with an extra move
// halfway between consecutive nodes to mimic a real drag.
func trace(t *testing.T, m *gesture.Machine, l *layout.Layout, nodes ...int) {
	t.Helper()
	x, y := center(t, l, nodes[0])
	m.Down(l, x, y)
	for _, n := range nodes[1:] {
		nx, ny := center(t, l, n)
		m.Move(l, (x+nx)/2, (y+ny)/2)
		m.Move(l, nx, ny)
		x, y = nx, ny
	}
}

// TestMachine_DownOffGrid stays Idle and keeps the selection untouched.
func TestMachine_DownOffGrid(t *testing.T) {
	l := mustLayout(t)
	var m gesture.Machine

	assert.True(t, m.Down(l, 100, 100), "redraw is always requested")
	assert.Equal(t, gesture.Idle, m.Phase())
	assert.Empty(t, m.Selection())

	assert.True(t, m.Move(l, 50, 50))
	assert.Empty(t, m.Selection(), "moves are ignored while Idle")

	out, redraw := m.Up(pattern.MustSecret(0))
	assert.True(t, redraw)
	assert.Equal(t, pattern.None, out)
}

// TestMachine_DragPath traces [0,1,2,5,8] and revisits node 1 mid-gesture.
func TestMachine_DragPath(t *testing.T) {
	l := mustLayout(t)
	var m gesture.Machine

	x, y := center(t, l, 0)
	m.Down(l, x, y)
	assert.Equal(t, gesture.Dragging, m.Phase())
	assert.Equal(t, grid.Pressed, m.State(0))

	for _, n := range []int{1, 2} {
		x, y = center(t, l, n)
		m.Move(l, x, y)
	}
	// Back over node 1, then between nodes, then onward.
	x, y = center(t, l, 1)
	m.Move(l, x, y)
	m.Move(l, 200, 200)
	for _, n := range []int{5, 8} {
		x, y = center(t, l, n)
		m.Move(l, x, y)
	}

	assert.Equal(t, []int{0, 1, 2, 5, 8}, m.Selection())
	assert.Equal(t, grid.Pressed, m.State(1), "revisited node stays Pressed")
	assert.Equal(t, grid.Normal, m.State(4))

	out, _ := m.Up(pattern.MustSecret(0, 1, 2, 5, 8))
	assert.Equal(t, pattern.Match, out)
	assert.Equal(t, gesture.Idle, m.Phase())
}

// TestMachine_UpOutcome compares [0,1,3,4,7] with a matching and a differing secret.
func TestMachine_UpOutcome(t *testing.T) {
	l := mustLayout(t)
	cases := []struct {
		name   string
		secret pattern.Secret
		want   pattern.Outcome
	}{
		{"Match", pattern.MustSecret(0, 1, 3, 4, 7), pattern.Match},
		{"Mismatch", pattern.MustSecret(0, 1, 3, 4, 8), pattern.Mismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m gesture.Machine
			trace(t, &m, l, 0, 1, 3, 4, 7)
			require.Equal(t, []int{0, 1, 3, 4, 7}, m.Selection())

			out, _ := m.Up(tc.secret)
			assert.Equal(t, tc.want, out)
			for _, idx := range []int{0, 1, 3, 4, 7} {
				assert.Equal(t, grid.Pressed, m.State(idx), "outcome never touches states")
			}
		})
	}
}

// TestMachine_SelectionSurvivesUntilNextDown keeps a finished selection
// visible, ignores an off-grid press, and clears on a press on a node.
func TestMachine_SelectionSurvivesUntilNextDown(t *testing.T) {
	l := mustLayout(t)
	var m gesture.Machine
	trace(t, &m, l, 0, 3, 6)
	m.Up(pattern.Secret{})

	assert.Equal(t, []int{0, 3, 6}, m.Selection())

	m.Down(l, 100, 100)
	assert.Equal(t, []int{0, 3, 6}, m.Selection(), "off-grid press keeps the old trace")

	x, y := center(t, l, 4)
	m.Down(l, x, y)
	assert.Equal(t, []int{4}, m.Selection())
	assert.Equal(t, grid.Normal, m.State(0))
	assert.Equal(t, grid.Pressed, m.State(4))
}

// TestMachine_ErrorAndReset covers the host-policy hooks.
func TestMachine_ErrorAndReset(t *testing.T) {
	l := mustLayout(t)
	var m gesture.Machine
	trace(t, &m, l, 2, 4, 6)
	m.Up(pattern.MustSecret(0))

	m.MarkSelectionAsError()
	states := m.States()
	for i, st := range states {
		if i == 2 || i == 4 || i == 6 {
			assert.Equal(t, grid.Error, st, "node %d", i)
		} else {
			assert.Equal(t, grid.Normal, st, "node %d", i)
		}
	}

	m.ResetSelection()
	assert.Empty(t, m.Selection())
	assert.Equal(t, [9]grid.State{}, m.States())
	assert.Equal(t, gesture.Idle, m.Phase())
}

// TestMachine_ResetWhileDragging abandons the drag; the following release is a no-op.
func TestMachine_ResetWhileDragging(t *testing.T) {
	l := mustLayout(t)
	var m gesture.Machine
	x, y := center(t, l, 0)
	m.Down(l, x, y)
	m.ResetSelection()

	out, _ := m.Up(pattern.MustSecret(0))
	assert.Equal(t, pattern.None, out)
}

// TestMachine_NilLayout never selects anything.
func TestMachine_NilLayout(t *testing.T) {
	var m gesture.Machine
	m.Down(nil, 50, 50)
	m.Move(nil, 150, 50)
	assert.Equal(t, gesture.Idle, m.Phase())
	assert.Empty(t, m.Selection())
}

// TestPhase_String covers both phase names.
func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", gesture.Idle.String())
	assert.Equal(t, "dragging", gesture.Dragging.String())
}
