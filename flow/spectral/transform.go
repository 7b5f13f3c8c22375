package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Transform performs 2D complex FFTs on an nx-by-ny periodic grid.
//
// The transform is separable: a pass of length-nx FFTs over the contiguous
// rows, a transpose, a pass of length-ny FFTs over the columns, and a
// transpose back. Inverse passes carry the per-axis 1/n normalization of the
// underlying plans, so a Forward/Inverse round trip reproduces the input up
// to floating-point error.
//
// A Transform reuses internal scratch buffers and is not safe for concurrent
// use. Independent goroutines should construct independent Transforms.
type Transform struct {
	nx, ny int

	rowPlan *algofft.Plan[complex128]
	colPlan *algofft.Plan[complex128]

	// Transpose scratch, each nx*ny.
	ta []complex128
	tb []complex128
}

// NewTransform creates a 2D FFT for an nx-by-ny grid.
func NewTransform(nx, ny int) (*Transform, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("spectral: transform size must be positive: %dx%d", nx, ny)
	}

	rowPlan, err := algofft.NewPlan64(nx)
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create x-axis FFT plan: %w", err)
	}
	colPlan, err := algofft.NewPlan64(ny)
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create y-axis FFT plan: %w", err)
	}

	return &Transform{
		nx:      nx,
		ny:      ny,
		rowPlan: rowPlan,
		colPlan: colPlan,
		ta:      make([]complex128, nx*ny),
		tb:      make([]complex128, nx*ny),
	}, nil
}

// Nx returns the number of columns (x samples).
func (t *Transform) Nx() int { return t.nx }

// Ny returns the number of rows (y samples).
func (t *Transform) Ny() int { return t.ny }

// Len returns the number of modes, nx*ny.
func (t *Transform) Len() int { return t.nx * t.ny }

// Forward computes the 2D forward transform of src into dst.
// Both slices must have length nx*ny and must not alias.
func (t *Transform) Forward(dst, src []complex128) error {
	return t.apply(dst, src, false)
}

// Inverse computes the normalized 2D inverse transform of src into dst.
// Both slices must have length nx*ny and must not alias.
func (t *Transform) Inverse(dst, src []complex128) error {
	return t.apply(dst, src, true)
}

func (t *Transform) apply(dst, src []complex128, inverse bool) error {
	n := t.nx * t.ny
	if len(dst) != n || len(src) != n {
		return ErrLengthMismatch
	}

	// x-axis pass over contiguous rows.
	for j := 0; j < t.ny; j++ {
		row := j * t.nx
		if err := t.axisPass(t.rowPlan, dst[row:row+t.nx], src[row:row+t.nx], inverse); err != nil {
			return fmt.Errorf("spectral: x-axis transform failed: %w", err)
		}
	}

	// y-axis pass over columns, made contiguous by transposing.
	transpose(t.ta, dst, t.nx, t.ny)
	for i := 0; i < t.nx; i++ {
		seg := i * t.ny
		if err := t.axisPass(t.colPlan, t.tb[seg:seg+t.ny], t.ta[seg:seg+t.ny], inverse); err != nil {
			return fmt.Errorf("spectral: y-axis transform failed: %w", err)
		}
	}
	transpose(dst, t.tb, t.ny, t.nx)

	return nil
}

func (t *Transform) axisPass(plan *algofft.Plan[complex128], dst, src []complex128, inverse bool) error {
	if inverse {
		return plan.Inverse(dst, src)
	}
	return plan.Forward(dst, src)
}

// transpose writes src, laid out as h rows of w columns, into dst laid out
// as w rows of h columns.
func transpose(dst, src []complex128, w, h int) {
	for j := 0; j < h; j++ {
		row := j * w
		for i := 0; i < w; i++ {
			dst[i*h+j] = src[row+i]
		}
	}
}
