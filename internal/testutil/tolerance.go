package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-flow/flow/core"
	"github.com/cwbudde/algo-flow/flow/field"
)

// RequireFieldsNearlyEqual fails t if got and want differ in shape or if any
// sample pair differs by more than eps under core.NearlyEqual's absolute or
// relative rule. eps = 0 requires bit-identical samples.
func RequireFieldsNearlyEqual(t *testing.T, got, want *field.Field, eps float64) {
	t.Helper()
	if got == nil || want == nil {
		t.Fatalf("nil field: got %v, want %v", got, want)
	}
	if got.Nx() != want.Nx() || got.Ny() != want.Ny() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Nx(), got.Ny(), want.Nx(), want.Ny())
	}
	g, w := got.Data(), want.Data()
	for i := range g {
		if g[i] == w[i] {
			continue
		}
		if eps == 0 || !core.NearlyEqual(g[i], w[i], eps) {
			x := i % got.Nx()
			y := i / got.Nx()
			t.Fatalf("sample (%d,%d): got %v, want %v (eps %v)", x, y, g[i], w[i], eps)
		}
	}
}

// RequireFieldFinite fails t if any sample of f is NaN or Inf.
func RequireFieldFinite(t *testing.T, f *field.Field) {
	t.Helper()
	if f == nil {
		t.Fatal("nil field")
	}
	for i, v := range f.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample (%d,%d): non-finite value %v", i%f.Nx(), i/f.Nx(), v)
		}
	}
}
