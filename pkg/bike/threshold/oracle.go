package threshold

import "github.com/openbike/bike-go/pkg/bike/params"

// Oracle computes the BGF decoder's per-iteration bit-flip threshold
// for a fixed parameter level, hiding which of the two profiles
// (Affine or InfoTheoretic) backs the computation. The decoder only
// ever needs Threshold(S); it has no business knowing which formula
// produced the number.
type Oracle struct {
	profile params.ThresholdProfile
	level   params.Level
}

// NewOracle builds an Oracle for the given profile and parameter level.
func NewOracle(profile params.ThresholdProfile, level params.Level) *Oracle {
	return &Oracle{profile: profile, level: level}
}

// Threshold returns the number of votes a bit position needs to be
// flipped in this iteration, given the current syndrome weight.
func (o *Oracle) Threshold(syndromeWeight int) int {
	switch o.profile {
	case params.InfoTheoretic:
		l := o.level
		return ComputeInfoTheoretic(l.NBits(), l.D, l.D, syndromeWeight, l.T)
	default:
		l := o.level
		return Affine(l.ThresholdA, l.ThresholdB, l.ThresholdC, syndromeWeight)
	}
}
