// Package apicheck probes the pipeline API's health endpoint — the
// connectivity smoke test run before a measurement session starts.
//
// 🚀 What is apicheck?
//
//	One question, answered quickly: "is the acquisition API reachable and
//	answering?"  Ping issues a single GET against <base>/health and reports
//	the status code and round-trip latency.
//
// ✨ Design points:
//   - injected client: anything with Do(*http.Request) satisfies Doer, so
//     tests and callers with custom transports plug straight in
//   - context-first: the caller's ctx bounds the probe; Options.Timeout
//     adds a default deadline when the caller has none
//   - silent by default: pass a *slog.Logger in Options to see probe
//     diagnostics; the default logger discards everything at zero cost
//   - sentinel errors: ErrBadURL, ErrUnreachable, ErrBadStatus — callers
//     branch with errors.Is, never by string matching
//
// ⚙️ Usage:
//
//	import "github.com/fringelab/beamkit/apicheck"
//
//	res, err := apicheck.Ping(ctx, "https://freesim.lab.example", nil)
//	if err != nil {
//	  // errors.Is(err, apicheck.ErrUnreachable) → network problem
//	  // errors.Is(err, apicheck.ErrBadStatus)   → API up but unhealthy
//	}
//	fmt.Printf("ok in %s\n", res.Latency)
package apicheck
