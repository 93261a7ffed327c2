package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ExtractNormalized cuts ts down to samples with
// w.Start ≤ t ≤ w.Finish (inclusive on both ends) and divides every
// amplitude in the range by the maximum absolute amplitude.
//
// Returns ErrDegenerateWindow when the range selects no samples
// (including w.Start > w.Finish) or when every amplitude in the range
// is zero; in that case no Segment is produced and the caller should
// keep its previous valid one.
//
// Complexity: O(n) time, O(k) memory for the k selected samples.
func ExtractNormalized(ts *TimeSeries, w Window) (Segment, error) {
	var lo, hi int // half-open index range [lo, hi) of selected samples
	lo = len(ts.times)
	for i, t := range ts.times {
		if t >= w.Start {
			lo = i
			break
		}
	}
	hi = lo
	for hi < len(ts.times) && ts.times[hi] <= w.Finish {
		hi++
	}
	if lo >= hi {
		return Segment{}, ErrDegenerateWindow
	}

	seg := Segment{
		Times:      append([]float64(nil), ts.times[lo:hi]...),
		Amplitudes: append([]float64(nil), ts.amplitudes[lo:hi]...),
	}

	// Norm with p=∞ is the maximum absolute amplitude in the range.
	absMax := floats.Norm(seg.Amplitudes, math.Inf(1))
	if absMax == 0 {
		return Segment{}, ErrDegenerateWindow
	}
	// True division, not reciprocal multiplication: the extreme sample
	// must land on ±1 exactly.
	for i := range seg.Amplitudes {
		seg.Amplitudes[i] /= absMax
	}
	return seg, nil
}
