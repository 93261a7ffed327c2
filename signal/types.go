package signal

// TimeSeries holds one waveform as paired time and amplitude samples.
// Time values are strictly increasing; both slices are owned by the
// TimeSeries after construction and must not be mutated by the caller.
//
// A TimeSeries is loaded once (by the external file-loading layer) and
// immutable thereafter.
type TimeSeries struct {
	times      []float64
	amplitudes []float64
}

// NewTimeSeries validates and wraps paired time/amplitude samples.
// Returns ErrLengthMismatch, ErrTooFewSamples or ErrNonMonotonicTime
// on invalid input. The slices are copied, so later caller-side
// mutation cannot break the immutability contract.
//
// Complexity: O(n) time, O(n) memory for the defensive copies.
func NewTimeSeries(times, amplitudes []float64) (*TimeSeries, error) {
	if len(times) != len(amplitudes) {
		return nil, ErrLengthMismatch
	}
	if len(times) < 2 {
		return nil, ErrTooFewSamples
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, ErrNonMonotonicTime
		}
	}
	ts := &TimeSeries{
		times:      append([]float64(nil), times...),
		amplitudes: append([]float64(nil), amplitudes...),
	}
	return ts, nil
}

// Len returns the number of samples.
func (ts *TimeSeries) Len() int { return len(ts.times) }

// Times returns the time values. The returned slice is shared and
// read-only by contract.
func (ts *TimeSeries) Times() []float64 { return ts.times }

// Amplitudes returns the amplitude values. The returned slice is
// shared and read-only by contract.
func (ts *TimeSeries) Amplitudes() []float64 { return ts.amplitudes }

// Window is a pair of time bounds over one TimeSeries. Start and
// Finish are plain sample-time values, not indices; the selected range
// is Start ≤ t ≤ Finish inclusive. Start > Finish selects nothing.
type Window struct {
	Start  float64
	Finish float64
}

// Segment is a windowed, amplitude-normalized view of a TimeSeries:
// every amplitude has been divided by the maximum absolute amplitude
// inside the window, so max |Amplitudes| == 1.
type Segment struct {
	Times      []float64
	Amplitudes []float64
}

// Len returns the number of samples in the segment.
func (s Segment) Len() int { return len(s.Times) }
