package analytic

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrEmptySignal indicates a zero-length input segment.
var ErrEmptySignal = errors.New("analytic: input signal must be non-empty")

// Representation holds the two derived sequences of one segment's
// analytic signal. Both have the same length as the source segment.
type Representation struct {
	// Envelope is the analytic-signal magnitude, always ≥ 0.
	Envelope []float64
	// Phase is the analytic-signal angle divided by π, in (−1, 1].
	Phase []float64
}

// Transform computes the discrete analytic signal of x and returns its
// envelope and normalized phase.
//
// The spectrum weighting follows the standard construction: weight 1
// on DC, 2 on positive frequencies, 0 on negative frequencies; for an
// even length the Nyquist bin also keeps weight 1.
//
// Complexity: O(n log n) time, O(n) memory.
func Transform(x []float64) (Representation, error) {
	n := len(x)
	if n == 0 {
		return Representation{}, ErrEmptySignal
	}

	z := make([]complex128, n)
	for i, v := range x {
		z[i] = complex(v, 0)
	}

	fft := fourier.NewCmplxFFT(n)
	coeff := fft.Coefficients(nil, z)

	// One-sided spectrum: suppress negative frequencies, double the
	// positive ones. half is the first negative-frequency bin.
	half := (n + 1) / 2
	for k := 1; k < half; k++ {
		coeff[k] *= 2
	}
	if n%2 == 0 {
		half++ // keep the Nyquist bin at unit weight
	}
	for k := half; k < n; k++ {
		coeff[k] = 0
	}

	// Sequence is the unnormalized inverse; rescale by 1/n.
	z = fft.Sequence(z, coeff)
	scale := 1 / float64(n)

	rep := Representation{
		Envelope: make([]float64, n),
		Phase:    make([]float64, n),
	}
	for i, v := range z {
		v *= complex(scale, 0)
		rep.Envelope[i] = cmplx.Abs(v)
		rep.Phase[i] = cmplx.Phase(v) / math.Pi
	}
	return rep, nil
}
