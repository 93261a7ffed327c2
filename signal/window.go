package signal

import "math"

// DefaultWindow returns the initial window for a series: the two
// samples nearest the series midpoint. This mirrors how an operator
// session starts, with a minimal window the operator then drags open.
//
// Complexity: O(1).
func DefaultWindow(ts *TimeSeries) Window {
	mid := ts.Len() / 2
	if mid+1 >= ts.Len() {
		mid = ts.Len() - 2
	}
	return Window{Start: ts.times[mid], Finish: ts.times[mid+1]}
}

// AdjustBound moves whichever bound is numerically closer to t.
// On an exact tie (|t−Start| == |t−Finish|) Finish moves, so the rule
// is: Start moves iff |t−Start| < |t−Finish|.
//
// Complexity: O(1).
func (w *Window) AdjustBound(t float64) {
	if math.Abs(t-w.Start) < math.Abs(t-w.Finish) {
		w.Start = t
		return
	}
	w.Finish = t
}
