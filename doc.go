// Package beamkit is a small toolkit of independent analysis helpers for an
// optical-interferometer experiment pipeline — beam-path cleanup, FreeSim
// convergence reports, fringe visibility, and an API connectivity probe.
//
// 🔬 What is beamkit?
//
//	A collection of pure, synchronous building blocks:
//		• pathseg    — split a recorded beam path into continuous strokes
//		  wherever consecutive samples jump farther than a distance threshold
//		• visibility — two-beam interference intensity and fringe visibility
//		• report     — decode and merge FreeSim convergence-report JSON
//		• apicheck   — health-probe a pipeline API through an injected client
//
// ✨ Why choose beamkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every function is a pure value transformation
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors, never panics
//
// The packages do not depend on each other at runtime: each reads one input,
// performs one transformation, and returns one result.
//
// Quick ASCII example:
//
//	    •──•──•        •──•
//	   path A   gap   path B
//
//	pathseg turns one recorded point stream into the two strokes A and B.
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/fringelab/beamkit
package beamkit
