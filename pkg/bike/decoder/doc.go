// Package decoder implements the BGF (Black-Gray-Flip) iterative
// bit-flipping decoder described in spec.md §4.6. It mutates a working
// syndrome and error-vector estimate over a fixed number of outer
// iterations, using a threshold.Oracle to decide which bit positions to
// flip each round, with a denser "masked" re-pass over the black and
// gray sets on the first iteration only.
//
// The decoder is deliberately not constant-time: its control flow and
// memory-access pattern depend on secret data (spec.md explicitly
// excludes timing-side-channel hardening from scope). Callers that need
// a timing-independent accept/reject decision get it from
// crypto/subtle.ConstantTimeCompare at the KEM layer, not from this
// package.
package decoder
