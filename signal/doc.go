// Package signal models one recorded ultrasonic waveform and the
// operator-controlled time window used to cut it down to the region of
// interest.
//
// 🚀 What does signal provide?
//
//	  • TimeSeries — immutable (time, amplitude) samples with strictly
//	    increasing time values
//	  • Window     — a mutable (Start, Finish) pair of time bounds,
//	    moved one bound at a time by AdjustBound
//	  • Segment    — the windowed subrange with amplitudes divided by
//	    the maximum absolute amplitude in the range
//
// ⚙️ Contract:
//
//   - TimeSeries is validated once at construction and never mutated.
//   - AdjustBound replaces whichever bound is numerically closer to the
//     requested time; an exact tie moves Finish.
//   - ExtractNormalized is a pure function of (TimeSeries, Window); a
//     non-degenerate result always has max |amplitude| == 1.
//   - An empty or all-zero range yields ErrDegenerateWindow and no
//     partial result — callers keep their previous valid segment.
//
// Complexity: all operations are O(n) in the series length, O(1) extra
// memory beyond the returned segment.
package signal
