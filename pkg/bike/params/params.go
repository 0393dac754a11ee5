package params

// Level is an immutable BIKE parameter set, fixed at build time.
type Level struct {
	// Name identifies the NIST security level this parameter set targets.
	Name string

	// R is the code block length in bits. It is prime.
	R int
	// D is the row weight of each of h0 and h1.
	D int
	// T is the total Hamming weight of the error vector e = (e0 || e1).
	T int

	// N is the BGF decoder's outer iteration count.
	N int
	// Tau is the decoder's gray-zone margin.
	Tau int

	// ThresholdA, ThresholdB, ThresholdC parametrize the affine
	// threshold function T(S) = floor(max(ThresholdA + ThresholdB*S, ThresholdC)).
	ThresholdA float64
	ThresholdB float64
	ThresholdC int
}

// ThresholdProfile selects which bit-flip threshold function the BGF
// decoder uses. Affine is the reference profile used for conformance;
// InfoTheoretic is the alternative carried over from the BIKE reference
// implementation for analysis (spec.md §4.5, §9 OQ).
type ThresholdProfile int

const (
	Affine ThresholdProfile = iota
	InfoTheoretic
)

// SSBits is the shared-secret size in bits (ℓ), fixed across all levels.
const SSBits = 256

// SSBytes is the shared-secret size in bytes (ℓ/8).
const SSBytes = SSBits / 8

// SeedBytes is the size of an entropy seed in bytes.
const SeedBytes = 32

// RBytes returns ⌈r/8⌉, the byte length of a dense ring element.
func (l Level) RBytes() int {
	return (l.R + 7) / 8
}

// NBits returns n = 2r, the bit length of the error vector e = (e0 || e1).
func (l Level) NBits() int {
	return 2 * l.R
}

// NBytes returns ⌈2r/8⌉, the byte length of a dense error vector.
func (l Level) NBytes() int {
	return (l.NBits() + 7) / 8
}

// Level1 targets NIST security level 1.
var Level1 = Level{
	Name:       "BIKE-L1",
	R:          12323,
	D:          71,
	T:          134,
	N:          5,
	Tau:        3,
	ThresholdA: 13.530,
	ThresholdB: 0.0069722,
	ThresholdC: 36,
}

// Level3 targets NIST security level 3.
var Level3 = Level{
	Name:       "BIKE-L3",
	R:          24659,
	D:          103,
	T:          199,
	N:          5,
	Tau:        3,
	ThresholdA: 15.2588,
	ThresholdB: 0.005265,
	ThresholdC: 52,
}

// Level5 targets NIST security level 5.
var Level5 = Level{
	Name:       "BIKE-L5",
	R:          40973,
	D:          137,
	T:          264,
	N:          5,
	Tau:        3,
	ThresholdA: 17.8785,
	ThresholdB: 0.00402312,
	ThresholdC: 69,
}
