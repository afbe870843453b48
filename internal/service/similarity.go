package service

import "math"

// cosineSimilarity computes the cosine similarity of two like-sets treated
// as binary vectors over the union of their posts:
//
//	sim(a, b) = |a ∩ b| / (sqrt(|a|) * sqrt(|b|))
//
// The result is symmetric, deterministic and bounded in [0, 1]. It is 1
// exactly when both sets are identical and non-empty, and 0 when either
// set is empty or nothing overlaps.
func cosineSimilarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shared := sharedLikes(a, b)
	if shared == 0 {
		return 0
	}

	return float64(shared) / (math.Sqrt(float64(len(a))) * math.Sqrt(float64(len(b))))
}

// sharedLikes returns the size of the intersection of two like-sets.
func sharedLikes(a, b map[string]struct{}) int {
	// Walk the smaller set
	if len(b) < len(a) {
		a, b = b, a
	}

	count := 0
	for post := range a {
		if _, ok := b[post]; ok {
			count++
		}
	}
	return count
}
