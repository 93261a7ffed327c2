// Package session owns the mutable state of one template/query
// comparison and runs the recompute pipelines in response to a small
// closed set of typed commands.
//
// 🚀 How a session works:
//
//	The UI layer (figure, mouse routing, file loading — all external)
//	feeds commands into Apply and reads results back through accessors:
//
//	  • AdjustWindow{Signal, Time} — move the nearer window bound,
//	    then re-extract, re-transform and re-align both signals
//	  • AddPick{Signal, Value}     — append an arrival pick, then
//	    re-derive statistics and re-propagate that signal's moduli
//	  • Recompute{}                — run both pipelines from scratch
//
// ⚙️ Contracts:
//
//   - Synchronous and single-threaded; Apply is deterministic given
//     the same state and command.
//   - Template and query states are independent and never mutate each
//     other; the only mutation points are the window bounds and the
//     pick sets.
//   - On a failed recompute (degenerate window, unusable distribution)
//     the previous valid artifacts are retained — nothing is
//     overwritten with invalid data — and the error surfaces to the
//     caller.
//   - Alignment runs the query as DTW reference sequence A and the
//     template as target B, for each of the raw, envelope and phase
//     representation pairs.
package session
