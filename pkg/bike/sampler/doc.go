// Package sampler draws sparse bit vectors from a deterministic byte
// stream via rejection sampling, without replacement, so that every
// subset of the requested weight is equally likely conditional on the
// PRNG's determinism (spec.md §4.3).
package sampler
