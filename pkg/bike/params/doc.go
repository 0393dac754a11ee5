// Package params fixes the BIKE parameter sets used by the rest of the
// core: the code block length r, the row weight d of each block of the
// parity-check matrix, the error weight t, the BGF decoder's iteration
// count and gray margin, and the level-specific affine threshold
// coefficients.
//
// Parameters are selected at build time by choosing one of the exported
// Level values; there is no runtime parameter negotiation.
package params
