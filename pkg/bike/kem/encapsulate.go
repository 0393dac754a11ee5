package kem

import (
	"context"
	"runtime"

	"github.com/openbike/bike-go/pkg/bike/hashing"
	"github.com/openbike/bike-go/pkg/bike/ring"
	"github.com/openbike/bike-go/pkg/bike/sampler"
	"github.com/openbike/bike-go/pkg/bike/shake"
)

// Encapsulate produces a ciphertext and shared secret for pk, following
// spec.md §4.7's Encapsulate: m is the first entropy seed; e = H(m);
// c0 = e0 + e1*h; c1 = L(e0, e1) XOR m; ss = K(m, c0, c1).
func (s *Scheme) Encapsulate(ctx context.Context, pk *PublicKey) (*Ciphertext, []byte, error) {
	l := s.level
	s.logger.Debug(ctx, "kem: encapsulating", "level", l.Name)

	seed1, seed2, err := s.entropy.GetSeeds(PurposeEncaps)
	if err != nil {
		return nil, nil, &Error{Op: OpEncapsulate, Err: err}
	}
	runtime.KeepAlive(seed2) // unused, mirrors the reference implementation

	m := make([]byte, len(seed1))
	copy(m, seed1[:])

	prng := shake.New(m)
	defer prng.Zeroize()

	ebits, err := sampler.Generate(prng, l.T, l.NBits())
	if err != nil {
		return nil, nil, &Error{Op: OpEncapsulate, Err: ErrPRNGFail}
	}
	e0, e1 := ring.Split(ebits, l.R)

	e1Row := ring.Indices(e1, l.R)
	c0 := ring.Add(ring.SparseMulDense(e1Row, pk.H, l.R), e0)

	le, err := hashing.L(e0, e1)
	if err != nil {
		return nil, nil, &Error{Op: OpEncapsulate, Err: err}
	}
	c1 := xorBytes(le, m)

	ss, err := hashing.K(m, c0, c1)
	if err != nil {
		return nil, nil, &Error{Op: OpEncapsulate, Err: err}
	}

	e0.Zeroize()
	e1.Zeroize()

	return &Ciphertext{C0: c0, C1: c1}, ss, nil
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
