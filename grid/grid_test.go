package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lockpattern/grid"
	"github.com/katalvlaran/lockpattern/layout"
)

//----------------------------------------------------------------------------//
// Nodes and States
//----------------------------------------------------------------------------//

// TestNodeAt maps pattern indices to row/col and rejects out-of-range ones.
func TestNodeAt(t *testing.T) {
	n, ok := grid.NodeAt(5)
	require.True(t, ok)
	assert.Equal(t, grid.Node{Row: 1, Col: 2, Index: 5}, n)

	for _, idx := range []int{-1, 9} {
		_, ok := grid.NodeAt(idx)
		assert.False(t, ok, "index %d", idx)
	}

	nodes := grid.Nodes()
	require.Len(t, nodes, 9)
	for i, n := range nodes {
		assert.Equal(t, i, n.Index)
		assert.Equal(t, i, n.Row*3+n.Col)
	}
}

// TestStates_SetExactlyOne verifies states replace each other and bad input is ignored.
func TestStates_SetExactlyOne(t *testing.T) {
	var st grid.States
	for i := 0; i < 9; i++ {
		assert.Equal(t, grid.Normal, st.Get(i))
	}

	st.Set(3, grid.Pressed)
	assert.Equal(t, grid.Pressed, st.Get(3))
	st.Set(3, grid.Error)
	assert.Equal(t, grid.Error, st.Get(3))

	st.Set(3, grid.State(42))
	assert.Equal(t, grid.Error, st.Get(3), "unknown state is ignored")
	st.Set(12, grid.Pressed)
	assert.Equal(t, grid.Normal, st.Get(12))

	st.Reset()
	assert.Equal(t, [9]grid.State{}, st.Snapshot())
}

// TestState_String covers the state names.
func TestState_String(t *testing.T) {
	assert.Equal(t, "normal", grid.Normal.String())
	assert.Equal(t, "pressed", grid.Pressed.String())
	assert.Equal(t, "error", grid.Error.String())
	assert.Equal(t, "unknown", grid.State(-1).String())
}

//----------------------------------------------------------------------------//
// HitTest
//----------------------------------------------------------------------------//

// TestHitTest_Centers hits every node exactly at its centre across several layouts.
func TestHitTest_Centers(t *testing.T) {
	sizes := [][2]int{{36, 36}, {300, 500}, {1080, 1920}, {1920, 1080}, {37, 200}}
	for _, sz := range sizes {
		l, err := layout.Compute(sz[0], sz[1])
		require.NoError(t, err)
		for i, c := range l.Centers() {
			got, ok := grid.HitTest(l, c.X, c.Y)
			require.True(t, ok, "size %v node %d", sz, i)
			assert.Equal(t, i, got, "size %v", sz)
		}
	}
}

// TestHitTest_Misses covers the gaps between nodes, the radius boundary and nil layouts.
func TestHitTest_Misses(t *testing.T) {
	l, err := layout.Compute(300, 300) // cell 100, radius 25
	require.NoError(t, err)

	_, ok := grid.HitTest(l, 100, 100)
	assert.False(t, ok, "cell corner lies between nodes")

	_, ok = grid.HitTest(l, 50+25, 50)
	assert.False(t, ok, "exactly on the radius is outside")

	idx, ok := grid.HitTest(l, 50+24.9, 50)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = grid.HitTest(nil, 50, 50)
	assert.False(t, ok, "no layout, no hit")
}

//----------------------------------------------------------------------------//
// Selection
//----------------------------------------------------------------------------//

// TestSelection_AppendIfAbsent keeps insertion order and drops duplicates.
func TestSelection_AppendIfAbsent(t *testing.T) {
	var s grid.Selection
	assert.True(t, s.Append(0))
	assert.True(t, s.Append(1))
	assert.False(t, s.Append(1), "duplicate")
	assert.True(t, s.Append(2))
	assert.False(t, s.Append(0), "duplicate of the first")
	assert.False(t, s.Append(9), "invalid index")

	assert.Equal(t, []int{0, 1, 2}, s.Indices())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(-1))

	v, ok := s.At(2)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = s.At(3)
	assert.False(t, ok)
}

// TestSelection_IndicesIsCopy makes sure callers cannot mutate the selection.
func TestSelection_IndicesIsCopy(t *testing.T) {
	var s grid.Selection
	s.Append(4)
	s.Append(8)
	out := s.Indices()
	out[0] = 7
	assert.Equal(t, []int{4, 8}, s.Indices())
}

// TestSelection_Clear empties the selection and allows reuse of every index.
func TestSelection_Clear(t *testing.T) {
	var s grid.Selection
	for i := 0; i < 9; i++ {
		s.Append(i)
	}
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Indices())
	assert.True(t, s.Append(8))
	assert.Equal(t, []int{8}, s.Indices())
}
