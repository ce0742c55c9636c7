package separator

// Increment is the grid step used by Griddy (spec.md §4.5).
const Increment = 0.1

// BestDiffCeiling is the initial "no match yet" distance, high enough
// that any real evaluation replaces it on the first in-budget attempt.
const BestDiffCeiling = 1000.0

// CloseEnough is the distance below which a search stops early.
const CloseEnough = 1e-4

// Griddy performs an exhaustive coarse grid search over coat levels in
// Increment steps, pruning any combination whose coverage sum exceeds
// limit, and returns the best levels found and their distance to t.
// Mirrors luz_rgb_to_coats_griddy's counter-with-carry traversal:
// the rightmost coat advances each step, carrying into its left
// neighbor whenever it exceeds 1.0.
func Griddy(ev Evaluator, t Target, limit float32) ([]float32, float32) {
	coats := ev.Coats
	best := make([]float32, coats)
	attempt := make([]float32, coats)
	bestDiff := float32(BestDiffCeiling)

	if coats == 0 {
		return best, Distance(ev, t, attempt)
	}

	for {
		var coatsum float32
		for _, v := range attempt {
			coatsum += v
		}

		if coatsum <= limit {
			diff := Distance(ev, t, attempt)
			if diff < bestDiff {
				bestDiff = diff
				copy(best, attempt)
				if diff < CloseEnough {
					break
				}
			}
		}

		attempt[coats-1] += Increment
		for j := coats - 1; j > 0; j-- {
			if attempt[j] > 1.0 {
				attempt[j] = 0
				attempt[j-1] += Increment
			}
		}

		if attempt[0] > 1.0 {
			break
		}
	}

	return best, bestDiff
}
