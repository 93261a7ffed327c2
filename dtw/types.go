package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")
	// ErrBadWindow indicates a Window value below -1.
	ErrBadWindow = errors.New("dtw: Window must be -1 (unconstrained) or >= 0")
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — maximum deviation |i−j| allowed (Sakoe–Chiba
//     band). -1 disables the constraint; 0 forces the strict diagonal.
//   - SlopePenalty — additive cost for vertical/horizontal (stretch)
//     steps; 0 leaves the classic recurrence untouched.
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns the unconstrained classic configuration:
// no band, no slope penalty.
func DefaultOptions() Options {
	return Options{Window: -1, SlopePenalty: 0}
}

// Path is an optimal warping path between a reference sequence A and a
// target sequence B.
//
// IndexA and IndexB have equal length, are 1-based, monotonically
// non-decreasing, and cover exactly the endpoints: the first pair is
// (1, 1) and the last is (len(A), len(B)). Cost is the accumulated
// |A[i]−B[j]| along the path (plus slope penalties, if configured).
type Path struct {
	IndexA []int
	IndexB []int
	Cost   float64
}

// Len returns the number of index pairs on the path.
func (p Path) Len() int { return len(p.IndexA) }
