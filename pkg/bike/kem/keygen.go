package kem

import (
	"context"
	"runtime"

	"github.com/openbike/bike-go/pkg/bike/ring"
	"github.com/openbike/bike-go/pkg/bike/sampler"
	"github.com/openbike/bike-go/pkg/bike/shake"
)

// KeyGen samples a fresh (PublicKey, PrivateKey) pair: h0 and h1 are
// drawn from one SHAKE256 stream seeded by the first entropy seed, and
// sigma is set to the second (spec.md §4.7, step KeyGen).
func (s *Scheme) KeyGen(ctx context.Context) (*PublicKey, *PrivateKey, error) {
	l := s.level
	s.logger.Debug(ctx, "kem: generating keypair", "level", l.Name)

	seed1, seed2, err := s.entropy.GetSeeds(PurposeKeygen)
	if err != nil {
		return nil, nil, &Error{Op: OpKeyGen, Err: err}
	}

	prng := shake.New(seed1[:])
	defer prng.Zeroize()

	h0, err := sampler.Generate(prng, l.D, l.R)
	if err != nil {
		return nil, nil, &Error{Op: OpKeyGen, Err: ErrPRNGFail}
	}
	h1, err := sampler.Generate(prng, l.D, l.R)
	if err != nil {
		return nil, nil, &Error{Op: OpKeyGen, Err: ErrPRNGFail}
	}

	invH0, err := ring.Invert(h0, l.R)
	if err != nil {
		// h0 is not invertible in R. This happens with negligible
		// probability for the prime block lengths this module uses;
		// the caller is expected to retry KeyGen with fresh entropy.
		return nil, nil, &Error{Op: OpKeyGen, Err: err}
	}

	h1Row := ring.Indices(h1, l.R)
	h := ring.SparseMulDense(h1Row, invH0, l.R)

	sigma := make([]byte, len(seed2))
	copy(sigma, seed2[:])

	runtime.KeepAlive(seed1)
	runtime.KeepAlive(seed2)

	return &PublicKey{H: h}, &PrivateKey{H0: h0, H1: h1, Sigma: sigma}, nil
}
