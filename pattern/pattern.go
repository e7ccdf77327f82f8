// Package pattern defines the secret a traced gesture is checked against and
// the outcome of that check.
//
// A Secret is an immutable, ordered list of distinct node indices (0–8).
// Comparison is exact ordered value equality: the traced selection must visit
// the same nodes in the same order, no more and no fewer.
//
// Errors:
//
//   - ErrIndexOutOfRange: an index outside 0–8.
//   - ErrDuplicateIndex:  an index listed twice (a gesture can never repeat a node).
//   - ErrBadSymbol:       Parse met a character that is neither a digit nor a separator.
package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for secret construction and parsing.
var (
	// ErrIndexOutOfRange indicates a node index outside 0–8.
	ErrIndexOutOfRange = errors.New("pattern: node index out of range")
	// ErrDuplicateIndex indicates the same node index appears twice.
	ErrDuplicateIndex = errors.New("pattern: duplicate node index")
	// ErrBadSymbol indicates Parse met an unexpected character.
	ErrBadSymbol = errors.New("pattern: unexpected symbol")
)

const maxIndex = 8

// Outcome is the verdict of one completed gesture.
type Outcome int

const (
	// None means no gesture was evaluated (e.g. release without a started drag).
	None Outcome = iota
	// Match means the traced indices equal the secret.
	Match
	// Mismatch means they differ.
	Mismatch
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Secret is an immutable ordered sequence of node indices.
// The zero value is the empty secret, which matches no non-empty gesture.
type Secret struct {
	seq []int
}

// NewSecret validates indices and returns them as a Secret.
// The input slice is copied.
func NewSecret(indices ...int) (Secret, error) {
	var seen [maxIndex + 1]bool
	seq := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx > maxIndex {
			return Secret{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
		}
		if seen[idx] {
			return Secret{}, fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}
		seen[idx] = true
		seq = append(seq, idx)
	}

	return Secret{seq: seq}, nil
}

// MustSecret is like NewSecret but panics on invalid input.
// Intended for constants in tests and hosts.
func MustSecret(indices ...int) Secret {
	s, err := NewSecret(indices...)
	if err != nil {
		panic(err)
	}

	return s
}

// Parse reads the digit-string form of a secret, e.g. "01347".
// Spaces, commas and dashes are accepted as separators, so "0-1-3-4-7" and
// "0, 1, 3" are valid too.
func Parse(s string) (Secret, error) {
	indices := make([]int, 0, len(s))
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			indices = append(indices, int(r-'0'))
		case r == ' ' || r == ',' || r == '-':
			continue
		default:
			return Secret{}, fmt.Errorf("%w %q at offset %d", ErrBadSymbol, r, i)
		}
	}

	return NewSecret(indices...)
}

// Indices returns a copy of the secret's node indices.
func (s Secret) Indices() []int {
	out := make([]int, len(s.seq))
	copy(out, s.seq)

	return out
}

// Len returns the number of nodes in the secret.
func (s Secret) Len() int {
	return len(s.seq)
}

// IsEmpty reports whether the secret has no nodes.
func (s Secret) IsEmpty() bool {
	return len(s.seq) == 0
}

// Equal reports whether two secrets hold the same indices in the same order.
func (s Secret) Equal(other Secret) bool {
	return equalSeq(s.seq, other.seq)
}

// Compare checks a traced index sequence against the secret.
// An empty trace yields Mismatch unless the secret is empty as well.
func (s Secret) Compare(traced []int) Outcome {
	if equalSeq(s.seq, traced) {
		return Match
	}

	return Mismatch
}

// String renders the secret in the digit-string form accepted by Parse.
func (s Secret) String() string {
	var b strings.Builder
	b.Grow(len(s.seq))
	for _, idx := range s.seq {
		b.WriteByte(byte('0' + idx))
	}

	return b.String()
}

func equalSeq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
