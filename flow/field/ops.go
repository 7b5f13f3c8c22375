package field

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Add returns a + b element-wise.
func Add(a, b *Field) (*Field, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := &Field{nx: a.nx, ny: a.ny, data: make([]float64, len(a.data))}
	vecmath.AddBlock(out.data, a.data, b.data)
	return out, nil
}

// Sub returns a - b element-wise.
func Sub(a, b *Field) (*Field, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := &Field{nx: a.nx, ny: a.ny, data: make([]float64, len(a.data))}
	for i := range out.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out, nil
}

// Mul returns a * b element-wise.
func Mul(a, b *Field) (*Field, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := &Field{nx: a.nx, ny: a.ny, data: make([]float64, len(a.data))}
	vecmath.MulBlock(out.data, a.data, b.data)
	return out, nil
}

// Scale returns f * s element-wise.
func Scale(f *Field, s float64) (*Field, error) {
	if err := sameShape(f); err != nil {
		return nil, err
	}
	out := &Field{nx: f.nx, ny: f.ny, data: make([]float64, len(f.data))}
	vecmath.ScaleBlock(out.data, f.data, s)
	return out, nil
}

// ScaleInPlace multiplies every sample of f by s.
func ScaleInPlace(f *Field, s float64) error {
	if err := sameShape(f); err != nil {
		return err
	}
	vecmath.ScaleBlockInPlace(f.data, s)
	return nil
}

// AddInPlace accumulates src into dst.
func AddInPlace(dst, src *Field) error {
	if err := sameShape(dst, src); err != nil {
		return err
	}
	vecmath.AddBlockInPlace(dst.data, src.data)
	return nil
}

// Magnitude returns sqrt(x^2 + y^2) element-wise, the point-wise length of
// the vector field (x, y).
func Magnitude(x, y *Field) (*Field, error) {
	if err := sameShape(x, y); err != nil {
		return nil, err
	}
	out := &Field{nx: x.nx, ny: x.ny, data: make([]float64, len(x.data))}
	vecmath.Magnitude(out.data, x.data, y.data)
	return out, nil
}

// Abs returns |f| element-wise.
func Abs(f *Field) (*Field, error) {
	if err := sameShape(f); err != nil {
		return nil, err
	}
	out := &Field{nx: f.nx, ny: f.ny, data: make([]float64, len(f.data))}
	for i, v := range f.data {
		out.data[i] = math.Abs(v)
	}
	return out, nil
}

// MaxAbs returns the largest absolute sample value, or 0 for a nil field.
func MaxAbs(f *Field) float64 {
	if f == nil || len(f.data) == 0 {
		return 0
	}
	return vecmath.MaxAbs(f.data)
}
