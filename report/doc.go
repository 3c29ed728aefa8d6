// Package report decodes FreeSim convergence reports and merges them into a
// single summary artifact.
//
// 🚀 What is a convergence report?
//
//	Each FreeSim run emits one JSON document describing how its solver
//	converged: the run name, iteration count, the residual after every
//	iteration, the tolerance it was solving to, and whether it got there.
//
//	  {
//	    "run": "cavity-sweep-03",
//	    "iterations": 4,
//	    "residuals": [0.9, 0.1, 0.003, 0.0008],
//	    "tolerance": 0.001,
//	    "converged": true
//	  }
//
// ✨ What the package does:
//   - Decode / DecodeAll — read one report or a JSON array of them
//   - Merge             — fold many runs into one Summary: totals, converged
//     count, and the worst final residual with the run that produced it
//   - Summary.Encode    — write the merged artifact as indented JSON, the
//     pipeline's single persisted output
//
// Reports are validated early: an iteration count that disagrees with the
// residual trace is rejected with ErrMalformedReport before it can poison
// the merge. Merging is deterministic — runs are ordered by name, so the
// same inputs always produce the same artifact.
//
// ⚙️ Usage:
//
//	import "github.com/fringelab/beamkit/report"
//
//	runs, err := report.DecodeAll(f)
//	if err != nil { ... }
//	sum, err := report.Merge(runs)
//	if err != nil { ... }
//	err = sum.Encode(out)
package report
