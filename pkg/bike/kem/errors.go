package kem

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (possibly wrapped in *Error) by Scheme's
// operations.
var (
	// ErrEntropy indicates the configured Entropy source failed to
	// produce seed material.
	ErrEntropy = errors.New("kem: entropy source failed")
	// ErrPRNGFail indicates the SHAKE256 PRNG failed to squeeze output.
	ErrPRNGFail = errors.New("kem: prng squeeze failed")
)

// Op names the Scheme method that produced an *Error.
type Op string

const (
	OpKeyGen      Op = "KeyGen"
	OpEncapsulate Op = "Encapsulate"
	OpDecapsulate Op = "Decapsulate"
)

// Error wraps a failure from a Scheme operation with the operation that
// produced it, in the style of the standard library's fs.PathError.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("kem: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
