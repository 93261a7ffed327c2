package uncertain

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// defaultDraws is the fixed Monte Carlo sample count used when the
// caller does not override it.
const defaultDraws = 10000

// defaultSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// Options configures Monte Carlo propagation.
//
// Fields:
//   - Draws — number of samples drawn from each input distribution.
//   - Seed  — RNG seed; 0 selects the fixed default seed, so results
//     are reproducible unless the caller explicitly varies it.
type Options struct {
	Draws int
	Seed  uint64
}

// DefaultOptions returns the standard propagation configuration.
func DefaultOptions() Options {
	return Options{Draws: defaultDraws, Seed: 0}
}

// Moduli holds the four propagated elastic-property distributions of
// one signal state. Fields after a propagation failure are zero; see
// PropagateModuli.
type Moduli struct {
	// Velocity is the compressional wave velocity, m/s.
	Velocity Distribution
	// Bulk is the bulk modulus K, GPa.
	Bulk Distribution
	// Young is the Young's-modulus output of the propagation chain.
	Young Distribution
	// Poisson is the Poisson's-ratio output of the propagation chain.
	Poisson Distribution
}

// PropagateModuli draws opts.Draws independent samples from each input
// and evaluates, element-wise and in this exact order:
//
//	velocity = (length / time) * 1e4
//	bulk     = (1e-6 * density * velocity²) − (4/3) * shear
//	young    = (3*bulk − 2*shear) / (2*(3*bulk + shear))
//	poisson  = (9*bulk*shear) / (3*bulk + shear)
//
// The constants encode unit conversions and are fixed; altering them
// changes physical meaning, not just magnitude.
//
// When every input is deterministic the draw collapses to a single
// evaluation (N=1), which equals the closed-form formulas at the
// means. Individual non-finite samples are retained in the output
// distributions; a modulus whose samples are all non-finite aborts the
// chain at that point, returning the moduli already derived plus an
// error wrapping ErrNonFiniteDistribution. The formulas are
// sequentially dependent (bulk feeds Young and Poisson), so the
// failure is reported once, at its first occurrence.
//
// Complexity: O(Draws) time and memory.
func PropagateModuli(length, density, shear, transit Scalar, opts *Options) (Moduli, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Draws <= 0 {
		return Moduli{}, ErrBadDraws
	}
	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	n := o.Draws
	if length.IsDeterministic() && density.IsDeterministic() &&
		shear.IsDeterministic() && transit.IsDeterministic() {
		n = 1
	}

	src := rand.NewSource(seed)
	ls := make([]float64, n)
	rhos := make([]float64, n)
	mus := make([]float64, n)
	ts := make([]float64, n)
	length.draw(ls, src)
	density.draw(rhos, src)
	shear.draw(mus, src)
	transit.draw(ts, src)

	var out Moduli
	var err error

	vs := make([]float64, n)
	for i := range vs {
		vs[i] = (ls[i] / ts[i]) * 1e4
	}
	if out.Velocity, err = NewDistribution(vs); err != nil {
		return out, fmt.Errorf("uncertain: velocity: %w", err)
	}

	ks := make([]float64, n)
	for i := range ks {
		ks[i] = (1e-6 * rhos[i] * vs[i] * vs[i]) - (4.0/3.0)*mus[i]
	}
	if out.Bulk, err = NewDistribution(ks); err != nil {
		return out, fmt.Errorf("uncertain: bulk modulus: %w", err)
	}

	es := make([]float64, n)
	for i := range es {
		es[i] = (3*ks[i] - 2*mus[i]) / (2 * (3*ks[i] + mus[i]))
	}
	if out.Young, err = NewDistribution(es); err != nil {
		return out, fmt.Errorf("uncertain: young modulus: %w", err)
	}

	ps := make([]float64, n)
	for i := range ps {
		ps[i] = (9 * ks[i] * mus[i]) / (3*ks[i] + mus[i])
	}
	if out.Poisson, err = NewDistribution(ps); err != nil {
		return out, fmt.Errorf("uncertain: poisson ratio: %w", err)
	}

	return out, nil
}
