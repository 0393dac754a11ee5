// Package kem assembles pkg/bike/{params,shake,sampler,ring,threshold,
// decoder,hashing} into the tripartite BIKE key encapsulation mechanism
// from spec.md §4.7: KeyGen, Encapsulate, and Decapsulate, with
// implicit rejection on decoding failure so Decapsulate never reveals,
// through its return value alone, whether decoding succeeded.
//
// Scheme is configured with functional options (WithEntropy, WithLogger,
// WithThresholdProfile) and is safe for concurrent use once constructed,
// since every operation allocates its own working state.
package kem
