// Package spectral provides Fourier-domain differentiation and filtering of
// 2D fields on periodic grids.
//
// Derivatives are computed by the classical spectral method: forward 2D FFT,
// multiplication of each mode by (i*kx)^m * (i*ky)^n, inverse FFT, real part.
// On a periodic, band-limited field the result is exact to round-off, which
// is what makes the self-consistency checks in diag/check meaningful.
//
// # Usage
//
// Construct a Differentiator once per grid and reuse it; wavenumbers and FFT
// plans are precomputed at construction:
//
//	d, err := spectral.NewDifferentiator(core.GridConfig{Nx: 64, Ny: 64, Dx: 1, Dy: 1})
//	dfdx, err := d.Derivative(f, 1, 0)  // df/dx
//	dfdy, err := d.DY(f)                // df/dy
//	mixed, err := d.Derivative(f, 1, 1) // d2f/dxdy
//	lap, err := d.Laplacian(f)          // single-pass d2f/dx2 + d2f/dy2
//
// The same machinery applies Gaussian low-pass filtering in the frequency
// domain, used by the stream-function generator:
//
//	smooth, err := d.Smooth(f, 5.0) // multiply modes by exp(-5|k|^2)
//
// # Conventions
//
// Wavenumbers follow the standard DFT frequency ordering (non-negative
// frequencies first, then the negative half; the Nyquist mode of an even
// axis is negative). Differentiation annihilates the Nyquist mode of an
// even-length axis, so chained first derivatives, direct higher-order
// derivatives, and the Laplacian all agree on fields with Nyquist-band
// energy. Inputs are treated as periodic along both axes: non-periodic
// features wrap around and contaminate derivatives near the boundary. The
// inverse transform carries the 1/(nx*ny) normalization, so
// Derivative(f, 0, 0) reproduces f up to floating-point error.
//
// # Concurrency
//
// A Differentiator owns scratch buffers and is not safe for concurrent use.
// The wavenumber slices it exposes are immutable after construction and may
// be read from any goroutine.
package spectral
