package threshold

import "math"

// Affine returns T(S) = floor(max(a + b*S, c)), the reference threshold
// function parametrized by a level's ThresholdA/B/C.
func Affine(a, b float64, c int, syndromeWeight int) int {
	v := a + b*float64(syndromeWeight)
	if float64(c) > v {
		v = float64(c)
	}
	return int(math.Floor(v))
}
