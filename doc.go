// Package pickwave is an alignment and uncertainty-propagation core for
// paired ultrasonic rock-sample waveforms — from raw time picks to
// elastic moduli with error bars.
//
// 🚀 What is pickwave?
//
//	A deterministic, I/O-free library that brings together:
//		• Windowing: bounded, amplitude-normalized waveform segments
//		• Analytic signal: envelope & instantaneous phase via the DFT
//		• Alignment: classic full-matrix Dynamic Time Warping (DTW)
//		• Picks: arrival-time estimates from repeated operator picks
//		• Uncertainty: Monte Carlo propagation to velocity, bulk,
//		  Young's modulus and Poisson's ratio
//
// ✨ Why choose pickwave?
//
//   - Deterministic – fixed-seed sampling, documented tie-breaking
//   - Side-effect-free – pure operations over caller-owned state
//   - No hidden I/O – loading, plotting and CLI concerns stay outside
//   - Cross-checkable – raw, envelope and phase alignments side by side
//
// Everything is organized under six subpackages:
//
//	signal/    — TimeSeries, Window, normalized segment extraction
//	analytic/  — envelope & phase of the discrete analytic signal
//	dtw/       — dynamic-time-warping alignment engine
//	picks/     — append-only arrival picks & summary statistics
//	uncertain/ — uncertain scalars & Monte Carlo moduli propagation
//	session/   — per-signal state, typed commands, recompute pipelines
//
// Quick ASCII sketch of one template/query comparison:
//
//	template ──▶ window ──▶ normalize ──▶ envelope/phase ─┐
//	                                                      ├─▶ DTW ×3
//	query    ──▶ window ──▶ normalize ──▶ envelope/phase ─┘
//
//	picks ──▶ statistics ──▶ Monte Carlo ──▶ V, K, E, ν (±σ)
//
// Dive into examples/ for runnable demos and each package's doc.go for
// the contracts and complexity guarantees.
//
//	go get github.com/pickwave/pickwave
package pickwave
