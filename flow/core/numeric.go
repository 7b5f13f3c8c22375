package core

import "math"

// DefaultTolerance is the residual bound used by consistency checks when the
// caller does not supply one. Spectral identities on well-resolved fields sit
// within a small multiple of machine epsilon; 1e-10 leaves headroom for
// transform accumulation error on larger grids.
const DefaultTolerance = 1e-10

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
//
// The comparison is absolute for small magnitudes and relative otherwise,
// so it behaves sensibly both near zero and for large field values.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
