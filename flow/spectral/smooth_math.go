//go:build !fastmath

package spectral

import "math"

// envelopeExp evaluates the Gaussian envelope using standard library math.
func envelopeExp(x float64) float64 {
	return math.Exp(x)
}
