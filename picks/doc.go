// Package picks turns repeated operator arrival-time picks into a
// statistical transit-time estimate.
//
// Each recorded waveform owns one Set. Picks are append-only within a
// session: an operator refines the estimate by clicking again, never
// by deleting. Stats derives (min, max, mean, population std) on
// demand; before any pick exists it returns the fixed neutral prior
// (−1, 1, 0, 0.25) so downstream propagation always has a usable,
// uninformative distribution.
//
// Complexity: Add is O(1); Stats is O(n) in the number of picks.
package picks
