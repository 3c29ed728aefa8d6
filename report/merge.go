package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Decode reads one convergence report from r.
//
// Errors:
//   - a wrapped decode error for invalid JSON
//   - ErrMalformedReport (wrapped with the run name) for a shape mismatch
func Decode(r io.Reader) (Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, fmt.Errorf("report: decode: %w", err)
	}
	if err := rep.validate(); err != nil {
		return Report{}, err
	}

	return rep, nil
}

// DecodeAll reads a JSON array of convergence reports from r, validating
// each element.
func DecodeAll(r io.Reader) ([]Report, error) {
	var reps []Report
	if err := json.NewDecoder(r).Decode(&reps); err != nil {
		return nil, fmt.Errorf("report: decode: %w", err)
	}
	for _, rep := range reps {
		if err := rep.validate(); err != nil {
			return nil, err
		}
	}

	return reps, nil
}

// Merge — FreeSim convergence-report merge
//
// Description:
//
//	Merge folds the reports of one pipeline sweep into a single Summary:
//	run count, total iterations, how many runs converged, and the worst
//	final residual together with the run that produced it.
//
// Determinism:
//
//	Runs are processed in ascending Run-name order regardless of input
//	order, so the same set of reports always yields the same Summary
//	(ties on the worst residual resolve to the earlier name).
//
// Complexity:
//
//	Time   = O(R log R) for R reports (sorting dominates)
//	Memory = O(R) for the sorted copy
//
// Errors:
//   - ErrNoReports       — empty or nil input.
//   - ErrMalformedReport — any report whose shape fails validation,
//     wrapped with the offending run name.
func Merge(reports []Report) (Summary, error) {
	if len(reports) == 0 {
		return Summary{}, ErrNoReports
	}

	sorted := make([]Report, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Run < sorted[j].Run })

	var sum Summary
	for _, rep := range sorted {
		if err := rep.validate(); err != nil {
			return Summary{}, err
		}

		sum.Runs++
		sum.TotalIterations += rep.Iterations
		if rep.Converged {
			sum.ConvergedRuns++
		}
		if final := rep.FinalResidual(); sum.WorstRun == "" || final > sum.WorstResidual {
			sum.WorstRun = rep.Run
			sum.WorstResidual = final
		}
	}

	return sum, nil
}

// Encode writes the summary to w as indented JSON, the sweep's single
// persisted artifact.
func (s Summary) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return nil
}
