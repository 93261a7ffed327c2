// Package analytic derives the discrete analytic signal of a real
// waveform segment and exposes its two practical faces: the amplitude
// envelope and the instantaneous phase.
//
// 🚀 Why two representations?
//
//	  • Envelope  — |z| of the analytic signal. Emphasizes where the
//	    arrival energy sits; robust to small cycle-scale noise.
//	  • Phase     — arg(z)/π in (−1, 1]. Emphasizes fine cycle
//	    alignment; sensitive to cycle skipping.
//
//	Aligning both (plus the raw signal) lets an operator cross-check
//	that an arrival time is consistent across representations.
//
// ⚙️ Construction:
//
//	The analytic signal is built in the frequency domain: forward DFT,
//	zero the negative-frequency half of the spectrum while doubling the
//	positive half (DC and, for even lengths, the Nyquist bin keep unit
//	weight), then inverse DFT. Transform is a pure function; both
//	output sequences have the input's length.
//
// Complexity: O(n log n) time, O(n) memory.
package analytic
