package uncertain

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Scalar is an uncertain quantity: either a deterministic value or a
// Gaussian description (mean, standard deviation). The zero Scalar is
// Deterministic(0).
type Scalar struct {
	mean float64
	std  float64
}

// Deterministic returns a Scalar with a single certain value.
func Deterministic(v float64) Scalar {
	return Scalar{mean: v}
}

// Gaussian returns a Scalar described by mean and standard deviation.
// A std of 0 (or below) degenerates cleanly to Deterministic(mean).
func Gaussian(mean, std float64) Scalar {
	if std <= 0 {
		return Deterministic(mean)
	}
	return Scalar{mean: mean, std: std}
}

// Mean returns the central value.
func (s Scalar) Mean() float64 { return s.mean }

// Std returns the standard deviation; 0 for a deterministic Scalar.
func (s Scalar) Std() float64 { return s.std }

// IsDeterministic reports whether the Scalar carries no uncertainty.
func (s Scalar) IsDeterministic() bool { return s.std == 0 }

// draw fills dst with independent samples of s. A deterministic Scalar
// yields the constant mean; a Gaussian Scalar draws from its normal
// distribution using src.
func (s Scalar) draw(dst []float64, src rand.Source) {
	if s.IsDeterministic() {
		for i := range dst {
			dst[i] = s.mean
		}
		return
	}
	norm := distuv.Normal{Mu: s.mean, Sigma: s.std, Src: src}
	for i := range dst {
		dst[i] = norm.Rand()
	}
}
