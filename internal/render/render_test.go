package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-flow/flow/field"
	"github.com/cwbudde/algo-flow/internal/testutil"
)

func TestSciColorClampsRange(t *testing.T) {
	// Out-of-range inputs pin to the ramp ends.
	if got := sciColor(-0.5); got != (color.RGBA{R: 0, G: 0, B: 255, A: 255}) {
		t.Errorf("sciColor(-0.5) = %+v, want blue", got)
	}
	if got := sciColor(1.5); got != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("sciColor(1.5) = %+v, want red", got)
	}
}

func TestHeatmapExtremes(t *testing.T) {
	f, err := field.FromSlice(2, 1, []float64{0, 1})
	if err != nil {
		t.Fatalf("failed to create field: %v", err)
	}

	img, err := Heatmap(f)
	if err != nil {
		t.Fatalf("Heatmap() error = %v", err)
	}

	// Minimum maps to the blue end, maximum to the red end of the ramp.
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 0, G: 0, B: 255, A: 255}) {
		t.Errorf("min pixel = %+v, want blue", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("max pixel = %+v, want red", got)
	}
}

func TestHeatmapFlatField(t *testing.T) {
	f := testutil.ConstantField(4, 4, 5)

	img, err := Heatmap(f)
	if err != nil {
		t.Fatalf("Heatmap() error = %v", err)
	}

	want := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if got := img.RGBAAt(i, j); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want mid-ramp green", i, j, got)
			}
		}
	}
}

func TestHeatmapBounds(t *testing.T) {
	f := testutil.SineField(16, 8, 1, 1)

	img, err := Heatmap(f)
	if err != nil {
		t.Fatalf("Heatmap() error = %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("bounds = %dx%d, want 16x8", b.Dx(), b.Dy())
	}
}

func TestHeatmapEmpty(t *testing.T) {
	if _, err := Heatmap(nil); err == nil {
		t.Error("expected error for nil field")
	}
}

func TestSymmetricHeatmapCentersZero(t *testing.T) {
	f, err := field.FromSlice(3, 1, []float64{-2, 0, 2})
	if err != nil {
		t.Fatalf("failed to create field: %v", err)
	}

	img, err := SymmetricHeatmap(f)
	if err != nil {
		t.Fatalf("SymmetricHeatmap() error = %v", err)
	}

	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 0, G: 0, B: 255, A: 255}) {
		t.Errorf("-r pixel = %+v, want blue", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 0, G: 255, B: 0, A: 255}) {
		t.Errorf("zero pixel = %+v, want mid-ramp green", got)
	}
	if got := img.RGBAAt(2, 0); got != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("+r pixel = %+v, want red", got)
	}
}

func TestSymmetricHeatmapOneSided(t *testing.T) {
	// An all-positive field still spans [-r, r], so nothing falls below
	// mid-ramp.
	f, err := field.FromSlice(2, 1, []float64{1, 3})
	if err != nil {
		t.Fatalf("failed to create field: %v", err)
	}

	img, err := SymmetricHeatmap(f)
	if err != nil {
		t.Fatalf("SymmetricHeatmap() error = %v", err)
	}

	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("+r pixel = %+v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got.B != 0 {
		t.Errorf("positive pixel = %+v, want warm half of the ramp", got)
	}
}

func TestSymmetricHeatmapZeroField(t *testing.T) {
	img, err := SymmetricHeatmap(testutil.ConstantField(4, 4, 0))
	if err != nil {
		t.Fatalf("SymmetricHeatmap() error = %v", err)
	}

	want := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	if got := img.RGBAAt(2, 2); got != want {
		t.Errorf("pixel = %+v, want mid-ramp green", got)
	}
}

func TestResidualMapZeroField(t *testing.T) {
	f := testutil.ConstantField(4, 4, 0)

	img, err := ResidualMap(f)
	if err != nil {
		t.Fatalf("ResidualMap() error = %v", err)
	}

	// Everything at the floor renders mid-ramp.
	want := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("pixel = %+v, want mid-ramp green", got)
	}
}

func TestResidualMapOrdersPixelsByMagnitude(t *testing.T) {
	f, err := field.FromSlice(3, 1, []float64{1e-14, -1e-6, 1})
	if err != nil {
		t.Fatalf("failed to create field: %v", err)
	}

	img, err := ResidualMap(f)
	if err != nil {
		t.Fatalf("ResidualMap() error = %v", err)
	}

	// The largest magnitude sits at the red end.
	if got := img.RGBAAt(2, 0); got != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("peak pixel = %+v, want red", got)
	}
	// The smallest stays near the blue end.
	if got := img.RGBAAt(0, 0); got.B == 0 {
		t.Errorf("near-floor pixel = %+v, want blue component", got)
	}
}

func TestWritePNG(t *testing.T) {
	f := testutil.SineField(8, 8, 1, 1)
	img, err := Heatmap(f)
	if err != nil {
		t.Fatalf("Heatmap() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "psi.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open written file: %v", err)
	}
	defer in.Close()

	decoded, err := png.Decode(in)
	if err != nil {
		t.Fatalf("failed to decode written file: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("decoded bounds = %dx%d, want 8x8", b.Dx(), b.Dy())
	}
}

func TestWritePNGBadPath(t *testing.T) {
	f := testutil.ConstantField(2, 2, 1)
	img, err := Heatmap(f)
	if err != nil {
		t.Fatalf("Heatmap() error = %v", err)
	}

	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for nonexistent directory")
	}
}
