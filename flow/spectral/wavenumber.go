package spectral

import (
	"fmt"
	"math"
)

// Wavenumbers returns the angular wavenumbers for an n-point periodic axis
// with sample spacing d, in standard DFT frequency order: the non-negative
// frequencies first, then the negative (aliased) half. For even n the
// Nyquist mode carries the negative sign, matching the usual fftfreq
// convention; both even and odd n are supported.
func Wavenumbers(n int, d float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectral: axis length must be > 0: %d", n)
	}
	if d <= 0 {
		return nil, fmt.Errorf("spectral: axis spacing must be > 0: %g", d)
	}

	k := make([]float64, n)
	scale := 2 * math.Pi / (float64(n) * d)
	half := (n - 1) / 2

	for i := 0; i <= half; i++ {
		k[i] = float64(i) * scale
	}
	for i := half + 1; i < n; i++ {
		k[i] = float64(i-n) * scale
	}
	return k, nil
}
