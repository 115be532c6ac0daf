package planning

import "github.com/planlock/planlock/internal/types"

// ComputeProgress derives completion counters from a question set. Pure
// function of its input; no persistence.
//
// Percentage is round-half-up of 100*answered/total (0 when total is 0).
// Because the inputs are integers, 100 is only reachable when every question
// is answered, but lock eligibility must still come from
// Progress.Complete(), which compares the raw counts.
func ComputeProgress(questions []*types.Question) types.Progress {
	total := len(questions)
	answered := 0
	for _, q := range questions {
		if q.Answered() {
			answered++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = (200*answered + total) / (2 * total)
	}

	return types.Progress{
		Total:      total,
		Answered:   answered,
		Percentage: percentage,
	}
}
