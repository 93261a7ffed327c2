package dtw

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Align computes the Dynamic Time Warping alignment between a
// (reference) and b (target).
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate an (n+1)×(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//     With the ∞ border, D[1][1] = d(1,1) and the first row/column
//     accumulate along the matrix edges, as required.
//  3. For i = 1..n, j = 1..m (and |i−j| ≤ Window, if constrained):
//     cost  = |a[i-1] − b[j-1]|
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//  4. Path.Cost = D[n][m].
//  5. Backtrack from (n,m) to (1,1), at each step choosing the
//     predecessor that achieved the minimum. Ties are broken in a
//     fixed order — diagonal, then vertical (i−1,j), then horizontal
//     (i,j-1) — so identical inputs always reproduce the same path.
//
// A Sakoe–Chiba band too narrow for the length difference makes the
// end cell unreachable; the returned Cost is then +Inf.
//
// Errors:
//   - ErrEmptyInput — if either sequence is empty.
//   - ErrBadWindow  — if opts.Window < -1.
//
// Complexity: O(n·m) time and memory.
func Align(a, b []float64, opts *Options) (Path, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return Path{}, ErrEmptyInput
	}

	window := -1
	penalty := 0.0
	if opts != nil {
		if opts.Window < -1 {
			return Path{}, ErrBadWindow
		}
		window = opts.Window
		penalty = opts.SlopePenalty
	}

	inf := math.Inf(1)
	d := mat.NewDense(n+1, m+1, nil)
	for i := 1; i <= n; i++ {
		d.Set(i, 0, inf)
	}
	for j := 1; j <= m; j++ {
		d.Set(0, j, inf)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if window >= 0 && abs(i-j) > window {
				d.Set(i, j, inf)
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			ins := d.At(i-1, j) + penalty
			del := d.At(i, j-1) + penalty
			match := d.At(i-1, j-1)
			d.Set(i, j, cost+min3(ins, del, match))
		}
	}

	// Backtrack; the path has at most n+m-1 pairs.
	ia := make([]int, 0, n+m-1)
	ib := make([]int, 0, n+m-1)
	i, j := n, m
	for {
		ia = append(ia, i)
		ib = append(ib, j)
		if i == 1 && j == 1 {
			break
		}
		diag := d.At(i-1, j-1)
		vert := d.At(i-1, j) + penalty
		horiz := d.At(i, j-1) + penalty
		switch {
		case diag <= vert && diag <= horiz:
			i--
			j--
		case vert <= horiz:
			i--
		default:
			j--
		}
	}
	reverseInts(ia)
	reverseInts(ib)

	return Path{IndexA: ia, IndexB: ib, Cost: d.At(n, m)}, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// reverseInts reverses s in place.
func reverseInts(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
