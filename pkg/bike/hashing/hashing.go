package hashing

import (
	"errors"

	"golang.org/x/crypto/sha3"

	"github.com/openbike/bike-go/pkg/bike/params"
	"github.com/openbike/bike-go/pkg/bike/ring"
)

// ErrHashFail is returned when the underlying SHA3-384 write or sum
// fails. golang.org/x/crypto/sha3's in-memory sponge never actually
// errors, but both wrappers check anyway rather than discarding the
// return value, so the error path is live, not a decoration.
var ErrHashFail = errors.New("hashing: sha3-384 operation failed")

// L computes the function L from spec.md §4.2: the SHA3-384 digest of
// the packed-byte concatenation of e0 and e1, truncated to
// params.SSBytes. It is used both to mask m into c1 during
// encapsulation and to recompute m' during decapsulation.
func L(e0, e1 ring.Poly) ([]byte, error) {
	h := sha3.New384()
	if _, err := h.Write(e0); err != nil {
		return nil, ErrHashFail
	}
	if _, err := h.Write(e1); err != nil {
		return nil, ErrHashFail
	}
	sum := h.Sum(nil)
	if len(sum) < params.SSBytes {
		return nil, ErrHashFail
	}
	return sum[:params.SSBytes], nil
}

// K computes the function K from spec.md §4.2: the SHA3-384 digest of
// m || c0 || c1, truncated to params.SSBytes. Decapsulation calls this
// with either the recovered plaintext m' (success path) or the secret
// sigma (implicit-rejection path), depending on whether the recomputed
// error vector matched the decoded one.
func K(m, c0, c1 []byte) ([]byte, error) {
	h := sha3.New384()
	for _, part := range [][]byte{m, c0, c1} {
		if _, err := h.Write(part); err != nil {
			return nil, ErrHashFail
		}
	}
	sum := h.Sum(nil)
	if len(sum) < params.SSBytes {
		return nil, ErrHashFail
	}
	return sum[:params.SSBytes], nil
}
