package spectral

import "errors"

// Errors returned by spectral transforms and derivative operators.
var (
	ErrNegativeOrder  = errors.New("spectral: derivative order must be non-negative")
	ErrNegativeSigma  = errors.New("spectral: smoothing sigma must be non-negative")
	ErrShapeMismatch  = errors.New("spectral: field shape does not match grid")
	ErrLengthMismatch = errors.New("spectral: buffer length mismatch")
)
