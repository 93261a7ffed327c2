package signal

import "errors"

var (
	// ErrLengthMismatch indicates the time and amplitude slices differ in length.
	ErrLengthMismatch = errors.New("signal: time and amplitude slices must have equal length")
	// ErrTooFewSamples indicates a series with fewer than two samples.
	ErrTooFewSamples = errors.New("signal: series must contain at least two samples")
	// ErrNonMonotonicTime indicates time values that are not strictly increasing.
	ErrNonMonotonicTime = errors.New("signal: time values must be strictly increasing")
	// ErrDegenerateWindow indicates a window selecting zero samples or an
	// all-zero amplitude range, for which normalization is undefined.
	ErrDegenerateWindow = errors.New("signal: window selects no samples or only zero amplitudes")
)
