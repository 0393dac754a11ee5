package kem

import (
	"context"
	"crypto/subtle"

	"github.com/openbike/bike-go/pkg/bike/decoder"
	"github.com/openbike/bike-go/pkg/bike/hashing"
	"github.com/openbike/bike-go/pkg/bike/ring"
	"github.com/openbike/bike-go/pkg/bike/sampler"
	"github.com/openbike/bike-go/pkg/bike/shake"
	"github.com/openbike/bike-go/pkg/bike/threshold"
)

// Decapsulate recovers the shared secret for ct under sk, following
// spec.md §4.7's Decapsulate with implicit rejection: on any decoding
// mismatch, K is computed over sigma instead of the recovered m', so a
// caller who only sees the returned shared secret cannot distinguish a
// decoding failure from a successful decapsulation of an honestly
// generated ciphertext.
func (s *Scheme) Decapsulate(ctx context.Context, sk *PrivateKey, ct *Ciphertext) ([]byte, error) {
	l := s.level
	s.logger.Debug(ctx, "kem: decapsulating", "level", l.Name)

	h0Row, err := ring.RowToCompact(sk.H0, l.R, l.D)
	if err != nil {
		return nil, &Error{Op: OpDecapsulate, Err: err}
	}
	h1Row, err := ring.RowToCompact(sk.H1, l.R, l.D)
	if err != nil {
		return nil, &Error{Op: OpDecapsulate, Err: err}
	}

	s0 := ring.SparseMulDense(h0Row, ct.C0, l.R)
	syndrome := ring.Transpose(ring.ByteToBit(s0, l.R), l.R)

	oracle := threshold.NewOracle(s.profile, l)
	result := decoder.Decode(syndrome, h0Row, h1Row, l, oracle)

	ePrime0 := ring.BitToByte(result.E[:l.R], l.R)
	ePrime1 := ring.BitToByte(result.E[l.R:2*l.R], l.R)

	le, err := hashing.L(ePrime0, ePrime1)
	if err != nil {
		return nil, &Error{Op: OpDecapsulate, Err: err}
	}
	mPrime := xorBytes(ct.C1, le)

	recomputedBits, err := sampler.Generate(shake.New(mPrime), l.T, l.NBits())
	if err != nil {
		return nil, &Error{Op: OpDecapsulate, Err: ErrPRNGFail}
	}

	// Canonical re-encode before comparison: both sides become
	// ⌈2r/8⌉-byte dense forms so the comparison below is a fixed-size,
	// fixed-shape ConstantTimeCompare regardless of which bits the
	// decoder happened to set (spec.md §9, comparison semantics).
	recomputedBytes := recomputedBits // sampler.Generate already returns the ⌈2r/8⌉-byte dense form
	decodedBytes := ring.BitToByte(result.E, l.NBits())
	match := subtle.ConstantTimeCompare(recomputedBytes, decodedBytes) == 1 && result.Converged

	var ss []byte
	if match {
		ss, err = hashing.K(mPrime, ct.C0, ct.C1)
	} else {
		ss, err = hashing.K(sk.Sigma, ct.C0, ct.C1)
	}
	if err != nil {
		return nil, &Error{Op: OpDecapsulate, Err: err}
	}

	ePrime0.Zeroize()
	ePrime1.Zeroize()
	for i := range mPrime {
		mPrime[i] = 0
	}

	return ss, nil
}
