// Package threshold computes the BGF decoder's bit-flip threshold from
// the current syndrome weight (spec.md §4.5). Two profiles are
// provided: Affine, the reference profile used for conformance, and
// InfoTheoretic, the information-theoretic alternative carried over
// from the BIKE reference implementation's threshold.c. Both are
// monotone functions of the syndrome weight, which is all the BGF
// decoder requires of either.
package threshold
