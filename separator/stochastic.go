package separator

import "math/rand"

// MaxCoverageAttempts bounds how many times a single iteration retries
// drawing a proposal before accepting one over the coverage limit
// anyway (spec.md §4.5).
const MaxCoverageAttempts = 10000

// Stochastic refines start by annealed random-walk search over
// iterations rounds, nudging each coat's proposal away from the
// direction it last moved (spec.md §4.5/§9). rng must be a private
// *rand.Rand — never a shared package-global generator — so concurrent
// separations never race on PRNG state (spec.md §5).
func Stochastic(ev Evaluator, t Target, start []float32, iterations int, diffusion0, diffusion1 float32, rng *rand.Rand) ([]float32, float32) {
	coats := ev.Coats
	prevBest := make([]float32, coats)
	best := make([]float32, coats)
	attempt := make([]float32, coats)
	copy(prevBest, start)
	copy(best, start)
	copy(attempt, start)

	bestDiff := float32(BestDiffCeiling)

	for i := 0; i < iterations; i++ {
		diff := Distance(ev, t, attempt)
		if diff < bestDiff {
			bestDiff = diff
			copy(prevBest, best)
			copy(best, attempt)
			if diff < CloseEnough {
				break
			}
		}

		radius := (float32(i)*diffusion1 + float32(iterations-i)*diffusion0) / float32(iterations)

		attempts := MaxCoverageAttempts
		for {
			var coatsum float32
			for j := 0; j < coats; j++ {
				dir := prevBest[j] - best[j]
				switch {
				case dir > 0.001:
					dir = 0.75
				case dir < -0.001:
					dir = 1.25
				default:
					dir = 1.0
				}
				attempt[j] = clamp01(best[j] + (float32(rng.Intn(10000))/5000.0-dir)*radius)
				coatsum += attempt[j]
			}
			if coatsum <= ev.CoverageLimit {
				break
			}
			attempts--
			if attempts <= 0 {
				break
			}
		}
	}

	return best, bestDiff
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
