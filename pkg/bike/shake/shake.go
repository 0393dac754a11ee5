package shake

import (
	"errors"
	"runtime"

	"golang.org/x/crypto/sha3"
)

// ErrEntropy is returned when SqueezeBytes is called on a PRNG that was
// never initialized with a seed.
var ErrEntropy = errors.New("shake: squeeze requested before init")

// PRNG is a deterministic byte stream derived from a seed via SHAKE256.
// The zero value is not ready for use; call Init or New.
//
// A PRNG is single-use state borrowed by one caller at a time; it is not
// safe for concurrent use.
type PRNG struct {
	xof  sha3.ShakeHash
	init bool
}

// New returns a PRNG initialized with seed.
func New(seed []byte) *PRNG {
	p := &PRNG{}
	p.Init(seed)
	return p
}

// Init (re)initializes the PRNG by absorbing seed and readying it to
// squeeze output. It may be called more than once on the same PRNG; each
// call replaces the SHAKE256 state with a freshly allocated one.
func (p *PRNG) Init(seed []byte) {
	p.xof = sha3.NewShake256()
	_, _ = p.xof.Write(seed)
	p.init = true
}

// SqueezeBytes returns the next n bytes of the deterministic output
// stream. Repeated calls continue the stream rather than restarting it.
// It fails with ErrEntropy if the PRNG has not been initialized.
func (p *PRNG) SqueezeBytes(n int) ([]byte, error) {
	if !p.init {
		return nil, ErrEntropy
	}
	out := make([]byte, n)
	if _, err := p.xof.Read(out); err != nil {
		// sha3's ShakeHash.Read never returns an error; this guards
		// against a future change in the XOF implementation.
		return nil, ErrEntropy
	}
	runtime.KeepAlive(p)
	return out, nil
}

// Zeroize discards the PRNG's internal state so the seed material it
// absorbed cannot be recovered from this value afterward.
func (p *PRNG) Zeroize() {
	p.xof = nil
	p.init = false
}
