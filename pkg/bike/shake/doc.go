// Package shake provides a minimal deterministic-byte-stream facade over
// SHAKE256, used as the pseudorandom generator behind the sparse sampler
// (see pkg/bike/sampler).
//
// The underlying Keccak-f[1600] permutation is provided by
// golang.org/x/crypto/sha3 rather than hand-rolled: spec.md treats the
// permutation as "a standard implementation is assumed" at the
// interface level, and this package supplies that standard
// implementation from the wider dependency pack instead of reimplementing
// the sponge construction.
package shake
