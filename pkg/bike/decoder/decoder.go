package decoder

import (
	"github.com/openbike/bike-go/pkg/bike/params"
	"github.com/openbike/bike-go/pkg/bike/ring"
	"github.com/openbike/bike-go/pkg/bike/threshold"
)

// Result is the outcome of a BGF decoding attempt.
type Result struct {
	// E is the recovered error vector in ByteToBit form: 2r cells, one
	// byte per bit, e0 occupying the first r cells and e1 the second r.
	E []byte
	// Converged reports whether the working syndrome reached zero.
	Converged bool
}

// Decode runs the BGF decoder for level.N iterations. syndrome must be
// in ring.ByteToBit form (length level.R, one byte per bit) and is
// consumed by value; the caller's copy is left untouched. h0Compact and
// h1Compact are the sorted row-index lists (each of weight level.D) of
// the two circulant blocks of H, as produced by ring.RowToCompact.
func Decode(syndrome []byte, h0Compact, h1Compact []int, level params.Level, oracle *threshold.Oracle) Result {
	r := level.R
	s := make([]byte, r)
	copy(s, syndrome)

	e := make([]byte, 2*r)
	h0Col := ring.CompactRowToColumn(h0Compact, r)
	h1Col := ring.CompactRowToColumn(h1Compact, r)

	black := make([]byte, 2*r)
	gray := make([]byte, 2*r)
	maskedThreshold := (level.D+1)/2 + 1

	for i := 1; i <= level.N; i++ {
		for j := range black {
			black[j] = 0
			gray[j] = 0
		}

		thresh := oracle.Threshold(hammingWeight(s))
		bfIter(e, black, gray, s, thresh, level.Tau, h0Compact, h1Compact, h0Col, h1Col, r)

		if i == 1 {
			bfMaskedIter(e, s, black, maskedThreshold, h0Compact, h1Compact, h0Col, h1Col, r)
			bfMaskedIter(e, s, gray, maskedThreshold, h0Compact, h1Compact, h0Col, h1Col, r)
		}
	}

	return Result{E: e, Converged: hammingWeight(s) == 0}
}

func hammingWeight(s []byte) int {
	count := 0
	for _, b := range s {
		count += int(b)
	}
	return count
}

// ctr counts how many of the DV circulant-column positions neighboring
// position currently have a set syndrome bit.
func ctr(col []int, position int, s []byte, r int) int {
	count := 0
	for _, c := range col {
		idx := (c + position) % r
		if s[idx] != 0 {
			count++
		}
	}
	return count
}

// flipAdjustedErrorPosition flips e at the position adjusted for the
// transpose relationship between the syndrome and the error vector: the
// syndrome indexes H^T's rows, but e indexes H's columns.
func flipAdjustedErrorPosition(e []byte, position, r int) {
	adjusted := position
	if position != 0 && position != r {
		if position > r {
			adjusted = (2*r-position) + r
		} else {
			adjusted = r - position
		}
	}
	e[adjusted] ^= 1
}

// recomputeSyndrome updates s in place after flipping e at pos, XORing
// in the corresponding column of H.
func recomputeSyndrome(s []byte, pos int, h0Compact, h1Compact []int, r int) {
	if pos < r {
		for _, h := range h0Compact {
			if h <= pos {
				s[pos-h] ^= 1
			} else {
				s[r-h+pos] ^= 1
			}
		}
		return
	}
	p := pos - r
	for _, h := range h1Compact {
		if h <= p {
			s[p-h] ^= 1
		} else {
			s[r-h+p] ^= 1
		}
	}
}

// bfIter runs one unmasked BGF iteration: every position whose counter
// meets threshold is flipped and marked black; every position whose
// counter falls within tau of threshold (but short of it) is marked
// gray for the first-iteration masked re-pass. threshold is assumed to
// exceed tau for every parameter level this decoder runs against, so
// the gray-zone comparison never needs to guard against underflow.
func bfIter(e, black, gray, s []byte, thresh, tau int, h0Compact, h1Compact []int, h0Col, h1Col []int, r int) {
	flipped := make([]byte, 2*r)

	for j := 0; j < r; j++ {
		count := ctr(h0Col, j, s, r)
		switch {
		case count >= thresh:
			flipAdjustedErrorPosition(e, j, r)
			flipped[j] = 1
			black[j] = 1
		case count >= thresh-tau:
			gray[j] = 1
		}
	}
	for j := 0; j < r; j++ {
		count := ctr(h1Col, j, s, r)
		switch {
		case count >= thresh:
			flipAdjustedErrorPosition(e, r+j, r)
			flipped[r+j] = 1
			black[r+j] = 1
		case count >= thresh-tau:
			gray[r+j] = 1
		}
	}

	for j, f := range flipped {
		if f == 1 {
			recomputeSyndrome(s, j, h0Compact, h1Compact, r)
		}
	}
}

// bfMaskedIter runs a re-pass restricted to positions set in mask
// (the black or gray set from the preceding bfIter call), using a
// denser threshold.
func bfMaskedIter(e, s, mask []byte, thresh int, h0Compact, h1Compact []int, h0Col, h1Col []int, r int) {
	flipped := make([]byte, 2*r)

	for j := 0; j < r; j++ {
		if ctr(h0Col, j, s, r) >= thresh && mask[j] != 0 {
			flipAdjustedErrorPosition(e, j, r)
			flipped[j] = 1
		}
	}
	for j := 0; j < r; j++ {
		if ctr(h1Col, j, s, r) >= thresh && mask[r+j] != 0 {
			flipAdjustedErrorPosition(e, r+j, r)
			flipped[r+j] = 1
		}
	}

	for j, f := range flipped {
		if f == 1 {
			recomputeSyndrome(s, j, h0Compact, h1Compact, r)
		}
	}
}
