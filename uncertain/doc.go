// Package uncertain models measured quantities as deterministic or
// Gaussian scalars and propagates them through the elastic-property
// formulas by Monte Carlo sampling.
//
// 🚀 What does uncertain provide?
//
//	  • Scalar       — a tagged value: Deterministic(v) or
//	    Gaussian(mean, std); std 0 degenerates to deterministic
//	  • Distribution — a propagated sample set with finite-sample
//	    mean/std and a non-finite data-quality fraction
//	  • PropagateModuli — velocity, bulk modulus, Young's modulus and
//	    Poisson's ratio from length, density, shear and transit time
//
// ⚙️ Determinism & contracts:
//
//   - Draws are reproducible: Seed 0 selects a fixed default seed, the
//     same seed always yields the same distributions.
//   - Inputs are sampled independently; no cross-input correlation is
//     modeled.
//   - When every input is deterministic the draw collapses to a single
//     evaluation that equals the closed-form formulas at the means.
//   - Individual non-finite samples are kept in the distribution and
//     reported through FiniteFraction; only a distribution with no
//     finite sample at all fails, with ErrNonFiniteDistribution at the
//     first modulus where it occurs.
//
// The formula constants encode unit conversions (µs/cm transit scaling
// to m/s velocity, g/cm³ density and GPa moduli) and carry physical
// meaning; they are fixed.
//
// Complexity: O(draws) time and memory per propagation.
package uncertain
