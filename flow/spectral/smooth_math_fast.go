//go:build fastmath

package spectral

import "github.com/meko-christian/algo-approx"

// envelopeExp evaluates the Gaussian envelope using fast approximation.
// Smoothing is a band-shaping step, not a validated identity, so the reduced
// precision of the approximation is acceptable here.
func envelopeExp(x float64) float64 {
	return approx.FastExp(x)
}
