package uncertain

import "errors"

var (
	// ErrNonFiniteDistribution indicates that every sample of a
	// propagated distribution is non-finite, so no usable statistics
	// can be derived from it.
	ErrNonFiniteDistribution = errors.New("uncertain: every sample of the distribution is non-finite")
	// ErrBadDraws indicates a non-positive Monte Carlo draw count.
	ErrBadDraws = errors.New("uncertain: Draws must be positive")
	// ErrNoSamples indicates an empty sample slice.
	ErrNoSamples = errors.New("uncertain: sample set must be non-empty")
)
