package uncertain

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Distribution is a propagated Monte Carlo sample set together with
// its summary statistics.
//
// Samples keeps every draw, including non-finite ones: a ±Inf or NaN
// sample reflects genuine numerical instability in the input draws and
// is data, not an error. Mean and Std are computed over the finite
// samples only (population std). FiniteFraction is the share of
// finite samples, a data-quality indicator for display.
type Distribution struct {
	Samples        []float64
	Mean           float64
	Std            float64
	FiniteFraction float64
}

// NewDistribution summarizes a Monte Carlo sample set. The slice is
// retained, not copied.
//
// Errors:
//   - ErrNoSamples              — samples is empty.
//   - ErrNonFiniteDistribution  — no sample is finite; the
//     distribution is unusable and no statistics can be derived.
//
// Complexity: O(n).
func NewDistribution(samples []float64) (Distribution, error) {
	if len(samples) == 0 {
		return Distribution{}, ErrNoSamples
	}

	finite := make([]float64, 0, len(samples))
	for _, v := range samples {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return Distribution{}, ErrNonFiniteDistribution
	}

	mean := stat.Mean(finite, nil)
	variance := stat.MomentAbout(2, finite, mean, nil)
	return Distribution{
		Samples:        samples,
		Mean:           mean,
		Std:            math.Sqrt(variance),
		FiniteFraction: float64(len(finite)) / float64(len(samples)),
	}, nil
}
