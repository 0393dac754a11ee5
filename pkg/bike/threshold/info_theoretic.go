package threshold

import "math"

// ComputeInfoTheoretic computes the information-theoretic threshold
// described in spec.md §4.5, following the log-domain derivation in the
// BIKE reference implementation's threshold.c (compute_threshold). n is
// the code length (2r), d is the column weight used in the final
// binomial search, w is the row weight of the relevant half of the
// parity-check matrix (equal to d at every call site in this package's
// own KEM, but kept distinct because the two roles are conceptually
// different), S is the current syndrome weight, and t is the total
// error weight.
func ComputeInfoTheoretic(n, d, w, syndromeWeight, t int) int {
	x := iks(n, w, t) * float64(syndromeWeight)
	p := countersC0(n, d, w, syndromeWeight, t, x)
	q := countersC1(d, syndromeWeight, t, x)

	var th int
	switch {
	case p >= 1.0 || p > q:
		th = d
	case q >= 1.0:
		th = searchThreshold(d, p, float64(n-t), 1.0)
	default:
		th = searchThresholdTwoTerm(d, p, q, float64(n-t), float64(t))
	}
	return th
}

// searchThreshold handles the q ≥ 1 branch: the do-while search
// degenerates to a single binomial term scaled by (n−t), compared
// against the constant 1.
func searchThreshold(d int, p, nMinusT, constant float64) int {
	th := d + 1
	for {
		th--
		diff := -math.Exp(lnBinomialPMF(d, th, p, 1-p))*nMinusT + constant
		if !(diff >= 0 && th > (d+1)/2) {
			break
		}
	}
	if th < d {
		th++
	} else {
		th = d
	}
	return th
}

// searchThresholdTwoTerm handles the general case: the do-while search
// compares two binomial terms, one scaled by (n−t) and one by t.
func searchThresholdTwoTerm(d int, p, q, nMinusT, tF float64) int {
	th := d + 1
	for {
		th--
		diff := -math.Exp(lnBinomialPMF(d, th, p, 1-p))*nMinusT +
			math.Exp(lnBinomialPMF(d, th, q, 1-q))*tF
		if !(diff >= 0 && th > (d+1)/2) {
			break
		}
	}
	if th < d {
		th++
	} else {
		th = d
	}
	return th
}

// lnBino returns ln(C(n, k)), the log of the binomial coefficient.
func lnBino(n, k int) float64 {
	if k == 0 || n == k {
		return 0.0
	}
	g1, _ := math.Lgamma(float64(n) + 1)
	g2, _ := math.Lgamma(float64(k) + 1)
	g3, _ := math.Lgamma(float64(n-k) + 1)
	return g1 - g2 - g3
}

// xlny returns x*ln(y), treating 0*ln(y) as 0 even when y is 0.
func xlny(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}

// lnBinomialPMF returns ln(C(n,k) * p^k * q^(n-k)).
func lnBinomialPMF(n, k int, p, q float64) float64 {
	return lnBino(n, k) + xlny(float64(k), p) + xlny(float64(n-k), q)
}

// euhLog returns ln(C(w,i)*C(n-w,t-i)/C(n,t)), the log-probability that
// exactly i of the t error positions fall among a fixed set of w
// columns.
func euhLog(n, w, t, i int) float64 {
	return lnBino(w, i) + lnBino(n-w, t-i) - lnBino(n, t)
}

// iks computes X = Σ (i−1)·E(i) / Σ E(i) over odd i < 10 (and i < t),
// where E(i) = exp(euhLog(n, w, t, i)). The terms decay fast enough that
// i ≥ 10 is negligible.
func iks(n, w, t int) float64 {
	var x, denom float64
	for i := 1; i < 10 && i < t; i += 2 {
		e := math.Exp(euhLog(n, w, t, i))
		x += float64(i-1) * e
		denom += e
	}
	if denom == 0 {
		return 0
	}
	return x / denom
}

// countersC0 is the probability that a syndrome bit is zero, given the
// syndrome weight S and the correction term X = iks(...)*S.
func countersC0(n, d, w, syndromeWeight, t int, x float64) float64 {
	return (float64(w-1)*float64(syndromeWeight) - x) / float64(n-t) / float64(d)
}

// countersC1 is the probability that a syndrome bit is one.
func countersC1(d, syndromeWeight, t int, x float64) float64 {
	return (float64(syndromeWeight) + x) / float64(t) / float64(d)
}
