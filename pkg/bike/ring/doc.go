// Package ring implements sparse and dense binary polynomial arithmetic
// over R = GF(2)[x]/(x^r − 1): modular multiplication (cyclic
// convolution), modular inversion via the extended Euclidean algorithm,
// addition, and the representation conversions the rest of the core
// needs (dense byte, dense bit, compact row/column index lists).
//
// Every exported function treats r as an explicit parameter rather than
// reading it from a global, so the package has no dependency on
// pkg/bike/params and can be exercised directly against any block
// length.
//
// None of these operations run in constant time; BIKE's own design
// tolerates this for everything except adaptive decryption oracles,
// which implicit rejection (pkg/bike/kem) defends against independently
// of how the ring arithmetic behaves.
package ring
