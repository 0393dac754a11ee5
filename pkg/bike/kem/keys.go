package kem

import "github.com/openbike/bike-go/pkg/bike/ring"

// PublicKey is h = h1 * h0⁻¹ in R, the public component of the BIKE
// keypair (spec.md §4.1; the implicit leading "1" component of pk is
// never materialized).
type PublicKey struct {
	H ring.Poly
}

// PrivateKey is (h0, h1, sigma): the two sparse rows of the parity
// check and the implicit-rejection mask.
type PrivateKey struct {
	H0    ring.Poly
	H1    ring.Poly
	Sigma []byte
}

// Zeroize overwrites every secret field of sk in place.
func (sk *PrivateKey) Zeroize() {
	sk.H0.Zeroize()
	sk.H1.Zeroize()
	for i := range sk.Sigma {
		sk.Sigma[i] = 0
	}
}

// Ciphertext is (c0, c1): the masked error syndrome and the masked
// seed.
type Ciphertext struct {
	C0 ring.Poly
	C1 []byte
}
