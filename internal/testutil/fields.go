package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-flow/flow/field"
)

func mustField(nx, ny int) *field.Field {
	f, err := field.New(nx, ny)
	if err != nil {
		panic(err)
	}
	return f
}

// NoiseField generates deterministic white noise in [-1, 1) on an nx-by-ny
// grid. Panics if the shape is invalid.
func NoiseField(nx, ny int, seed int64) *field.Field {
	f := mustField(nx, ny)
	rng := rand.New(rand.NewSource(seed))
	data := f.Data()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	return f
}

// SineField generates the product mode sin(2*pi*mx*i/nx)*sin(2*pi*my*j/ny),
// a smooth periodic field with analytically known derivatives. Either mode
// number set to zero yields the zero field. Panics if the shape is invalid.
func SineField(nx, ny, mx, my int) *field.Field {
	f := mustField(nx, ny)
	kx := 2 * math.Pi * float64(mx) / float64(nx)
	ky := 2 * math.Pi * float64(my) / float64(ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			f.Set(i, j, math.Sin(kx*float64(i))*math.Sin(ky*float64(j)))
		}
	}
	return f
}

// ConstantField generates a field with every sample set to value.
// Panics if the shape is invalid.
func ConstantField(nx, ny int, value float64) *field.Field {
	f := mustField(nx, ny)
	data := f.Data()
	for i := range data {
		data[i] = value
	}
	return f
}

// ImpulseField generates a field that is 1 at (i, j) and 0 elsewhere.
// An out-of-bounds position yields the zero field. Panics if the shape is
// invalid.
func ImpulseField(nx, ny, i, j int) *field.Field {
	f := mustField(nx, ny)
	if i >= 0 && i < nx && j >= 0 && j < ny {
		f.Set(i, j, 1)
	}
	return f
}
