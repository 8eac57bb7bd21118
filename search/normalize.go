package search

// NormalizeScores rescales scores into [0, maxScore] by min-max so the two
// retrieval methods become comparable. An empty input comes back unchanged;
// equal nonzero scores all map to maxScore; all-zero scores stay zero.
func NormalizeScores(scores []float64, maxScore float64) []float64 {
	if len(scores) == 0 {
		return scores
	}

	lo, hi := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	out := make([]float64, len(scores))
	if hi == lo {
		if hi == 0 {
			return out
		}
		for i := range out {
			out[i] = maxScore
		}
		return out
	}

	for i, s := range scores {
		out[i] = (s - lo) / (hi - lo) * maxScore
	}
	return out
}
