package facerec

import "math"

// DefaultThreshold is the Euclidean distance below which two face
// embeddings are considered the same person.
const DefaultThreshold = 0.6

// Distance returns the Euclidean distance between two embeddings.
// Mismatched or empty vectors return +Inf so they never match.
func Distance(stored, current []float64) float64 {
	if len(stored) == 0 || len(current) == 0 || len(stored) != len(current) {
		return math.Inf(1)
	}

	var sumSquaredDiff float64
	for i := range stored {
		diff := stored[i] - current[i]
		sumSquaredDiff += diff * diff
	}
	return math.Sqrt(sumSquaredDiff)
}

// Match reports whether the two embeddings are within threshold.
// A non-positive threshold falls back to DefaultThreshold.
func Match(stored, current []float64, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Distance(stored, current) < threshold
}

// SimilarityScore maps distance onto a 0-100 scale: distance 0 is a
// perfect match, distance >= 1 scores 0.
func SimilarityScore(stored, current []float64) float64 {
	d := Distance(stored, current)
	if math.IsInf(d, 1) {
		return 0
	}
	score := (1 - d) * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
