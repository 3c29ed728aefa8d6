// Package report defines the FreeSim report types and sentinel errors
// for the report subpackage of github.com/fringelab/beamkit.
package report

import (
	"errors"
	"fmt"
)

// Sentinel errors for report operations.
var (
	// ErrNoReports indicates Merge was called with nothing to merge.
	ErrNoReports = errors.New("report: at least one report is required")
	// ErrMalformedReport indicates a report whose iteration count and
	// residual trace disagree, or a report with no iterations at all.
	ErrMalformedReport = errors.New("report: iteration count and residual trace disagree")
)

// Report is one FreeSim solver run as emitted by the simulator.
type Report struct {
	// Run is the run identifier, unique within one pipeline sweep.
	Run string `json:"run"`
	// Iterations is the number of solver iterations performed.
	Iterations int `json:"iterations"`
	// Residuals holds the residual after each iteration; its length must
	// equal Iterations.
	Residuals []float64 `json:"residuals"`
	// Tolerance is the residual the solver was converging toward.
	Tolerance float64 `json:"tolerance"`
	// Converged records whether the final residual reached Tolerance.
	Converged bool `json:"converged"`
}

// validate rejects a report whose shape cannot be merged.
func (r Report) validate() error {
	if r.Iterations <= 0 || len(r.Residuals) != r.Iterations {
		return fmt.Errorf("run %q: %w", r.Run, ErrMalformedReport)
	}

	return nil
}

// FinalResidual returns the residual after the last iteration.
// Only meaningful on a validated report.
func (r Report) FinalResidual() float64 {
	if len(r.Residuals) == 0 {
		return 0
	}

	return r.Residuals[len(r.Residuals)-1]
}

// Summary is the merged artifact for one pipeline sweep.
type Summary struct {
	Runs            int     `json:"runs"`
	TotalIterations int     `json:"total_iterations"`
	ConvergedRuns   int     `json:"converged_runs"`
	// WorstRun names the run with the largest final residual.
	WorstRun      string  `json:"worst_run"`
	WorstResidual float64 `json:"worst_residual"`
}
