// Package field provides a dense 2D scalar field on a periodic grid.
//
// A Field stores float64 samples in row-major order: index (i, j) addresses
// column i along x and row j along y, backed by data[j*nx+i]. Spectral and
// diagnostic routines accept and return Fields of identical shape; the
// element-wise helpers in this package validate shapes and delegate the hot
// loops to vecmath kernels.
package field

import (
	"errors"
	"fmt"
)

// Errors returned by field constructors and operations.
var (
	ErrShapeMismatch = errors.New("field: shape mismatch")
	ErrEmpty         = errors.New("field: empty field")
)

// Field is a dense 2D grid of float64 samples.
type Field struct {
	nx, ny int
	data   []float64
}

// New returns a zero-filled field of nx columns by ny rows.
func New(nx, ny int) (*Field, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("field: size must be positive: %dx%d", nx, ny)
	}
	return &Field{
		nx:   nx,
		ny:   ny,
		data: make([]float64, nx*ny),
	}, nil
}

// FromSlice wraps an existing row-major slice without copying.
// Mutations to the slice are visible through the Field and vice versa.
func FromSlice(nx, ny int, data []float64) (*Field, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("field: size must be positive: %dx%d", nx, ny)
	}
	if len(data) != nx*ny {
		return nil, fmt.Errorf("field: data length %d does not match %dx%d grid", len(data), nx, ny)
	}
	return &Field{nx: nx, ny: ny, data: data}, nil
}

// Nx returns the number of columns (x samples).
func (f *Field) Nx() int { return f.nx }

// Ny returns the number of rows (y samples).
func (f *Field) Ny() int { return f.ny }

// Len returns the total number of samples.
func (f *Field) Len() int { return len(f.data) }

// Data returns the underlying row-major slice.
func (f *Field) Data() []float64 { return f.data }

// At returns the sample at column i, row j.
func (f *Field) At(i, j int) float64 {
	return f.data[j*f.nx+i]
}

// Set stores v at column i, row j.
func (f *Field) Set(i, j int, v float64) {
	f.data[j*f.nx+i] = v
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)
	return &Field{nx: f.nx, ny: f.ny, data: data}
}

// SameShape reports whether f and g have identical dimensions.
func (f *Field) SameShape(g *Field) bool {
	return f != nil && g != nil && f.nx == g.nx && f.ny == g.ny
}

func sameShape(fields ...*Field) error {
	if len(fields) == 0 || fields[0] == nil || fields[0].Len() == 0 {
		return ErrEmpty
	}
	for _, g := range fields[1:] {
		if !fields[0].SameShape(g) {
			return ErrShapeMismatch
		}
	}
	return nil
}
