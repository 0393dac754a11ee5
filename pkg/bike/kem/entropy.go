package kem

import "crypto/rand"

// Purpose identifies which operation is requesting entropy, mirroring
// the reference implementation's KEYGEN_SEEDS/ENCAPS_SEEDS distinction
// (spec.md §4.1). A custom Entropy implementation can use it to apply
// different policies (e.g. a deterministic test source that only needs
// to vary output per purpose) without inspecting call stacks.
type Purpose string

const (
	PurposeKeygen Purpose = "keygen"
	PurposeEncaps Purpose = "encaps"
)

// Entropy supplies the two 32-byte seeds a Scheme operation needs.
// KeyGen uses both (one to seed h0/h1 generation, one as sigma);
// Encapsulate uses only the first (as m) and discards the second, the
// same way the reference implementation does.
type Entropy interface {
	GetSeeds(purpose Purpose) (seed1, seed2 [32]byte, err error)
}

// cryptoRandEntropy is the default Entropy, backed by crypto/rand.
type cryptoRandEntropy struct{}

func (cryptoRandEntropy) GetSeeds(Purpose) (seed1, seed2 [32]byte, err error) {
	if _, err := rand.Read(seed1[:]); err != nil {
		return seed1, seed2, ErrEntropy
	}
	if _, err := rand.Read(seed2[:]); err != nil {
		return seed1, seed2, ErrEntropy
	}
	return seed1, seed2, nil
}
