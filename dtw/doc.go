// Package dtw aligns two numeric sequences with classic full-matrix
// Dynamic Time Warping and recovers the optimal warping path.
//
// 🚀 What is DTW?
//
//	DTW finds the best monotonic correspondence between two sequences
//	that may vary in pace by warping the index axis to minimize the
//	cumulative |a[i]−b[j]| cost. Here it matches a query waveform
//	(and its envelope and phase representations) against a template
//	recording of the same rock sample.
//
// ✨ Key properties:
//   - full-matrix mode: exact O(N·M) time & memory, path always
//     recovered by backtracking
//   - supports sequences of different lengths
//   - optional Sakoe–Chiba window (|i−j| ≤ w) and slope penalty;
//     both off by default
//   - deterministic: backtracking ties are broken diagonal first,
//     then vertical, then horizontal
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	path, err := dtw.Align(query, template, &opts)
//	if err != nil {
//	  // handle ErrEmptyInput or ErrBadWindow
//	}
//	fmt.Println("cost:", path.Cost)
//
// Complexity: O(N·M) time and memory.
package dtw
