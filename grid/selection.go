package grid

import "github.com/katalvlaran/lockpattern/layout"

// Selection is the ordered set of node indices traced by one gesture.
// Indices keep their insertion order and never repeat.
// The zero value is an empty selection ready to use.
type Selection struct {
	order []int
	seen  [layout.NodeCount]bool
}

// Append adds index to the end of the selection unless it is already present
// or invalid. It reports whether the index was appended.
func (s *Selection) Append(index int) bool {
	if !ValidIndex(index) || s.seen[index] {
		return false
	}
	s.seen[index] = true
	s.order = append(s.order, index)

	return true
}

// Contains reports whether index is already selected.
func (s *Selection) Contains(index int) bool {
	return ValidIndex(index) && s.seen[index]
}

// Len returns the number of selected nodes.
func (s *Selection) Len() int {
	return len(s.order)
}

// At returns the i-th selected index.
func (s *Selection) At(i int) (int, bool) {
	if i < 0 || i >= len(s.order) {
		return 0, false
	}

	return s.order[i], true
}

// Indices returns a copy of the selected indices in selection order.
func (s *Selection) Indices() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)

	return out
}

// Clear empties the selection, keeping the backing storage.
func (s *Selection) Clear() {
	s.order = s.order[:0]
	s.seen = [layout.NodeCount]bool{}
}
