package picks

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Neutral prior returned by Stats before any pick exists.
const (
	defaultMin  = -1.0
	defaultMax  = 1.0
	defaultMean = 0.0
	defaultStd  = 0.25
)

// Summary holds the derived statistics of a pick set. Std is the
// population standard deviation (divisor n, not n−1): the picks are
// the entire population of observations for this session.
type Summary struct {
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// Set is an append-only collection of operator time picks for one
// signal. The zero value is ready to use.
type Set struct {
	values []float64
}

// Add appends one pick. Picks are never removed within a session.
func (s *Set) Add(v float64) { s.values = append(s.values, v) }

// Len returns the number of picks recorded so far.
func (s *Set) Len() int { return len(s.values) }

// Values returns a copy of the recorded picks, in insertion order.
func (s *Set) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// Stats returns (min, max, mean, population std) over all picks, or
// the neutral prior (−1, 1, 0, 0.25) when no pick exists yet.
//
// Complexity: O(n).
func (s *Set) Stats() Summary {
	if len(s.values) == 0 {
		return Summary{Min: defaultMin, Max: defaultMax, Mean: defaultMean, Std: defaultStd}
	}
	mean := stat.Mean(s.values, nil)
	// The second central moment with unit weights is the population
	// variance.
	variance := stat.MomentAbout(2, s.values, mean, nil)
	return Summary{
		Min:  floats.Min(s.values),
		Max:  floats.Max(s.values),
		Mean: mean,
		Std:  math.Sqrt(variance),
	}
}
