// Package hashing implements the KEM's two SHA3-384-based wrappers,
// L and K (spec.md §4.2), each truncated to the shared-secret size. Both
// delegate to golang.org/x/crypto/sha3, the same Keccak implementation
// pkg/bike/shake uses for SHAKE256 — spec.md treats a conformant SHA-3
// implementation as assumed available, the same way it treats the
// entropy source.
package hashing
