// Package render rasterizes fields into PNG heatmaps for run artifacts.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/cwbudde/algo-flow/flow/core"
	"github.com/cwbudde/algo-flow/flow/field"
	fieldstats "github.com/cwbudde/algo-flow/stats/field"
)

// residualFloor is the smallest magnitude the log scale of ResidualMap
// resolves; residuals at or below it render as the bottom of the ramp.
const residualFloor = 1e-15

var errEmptyField = errors.New("render: empty field")

// sciColor maps a normalized value in [0, 1] onto a blue-cyan-green-yellow-red
// ramp. Out-of-range values clamp to the ramp ends.
func sciColor(t float64) color.RGBA {
	t = core.Clamp(t, 0, 0.9999)

	const m = 0.25
	num := math.Floor(t / m)
	s := (t - num*m) / m

	var r, g, b float64
	switch int(num) {
	case 0:
		r, g, b = 0, s, 1
	case 1:
		r, g, b = 0, 1, 1-s
	case 2:
		r, g, b = s, 1, 0
	case 3:
		r, g, b = 1, 1-s, 0
	}

	return color.RGBA{
		R: uint8(255 * r),
		G: uint8(255 * g),
		B: uint8(255 * b),
		A: 0xff,
	}
}

// Heatmap renders f with a linear scale between its minimum and maximum.
// Field row j maps to pixel row j. A flat field renders mid-ramp.
func Heatmap(f *field.Field) (*image.RGBA, error) {
	if f == nil || f.Len() == 0 {
		return nil, errEmptyField
	}

	s := fieldstats.Calculate(f)
	span := s.Max - s.Min

	img := image.NewRGBA(image.Rect(0, 0, f.Nx(), f.Ny()))
	for j := 0; j < f.Ny(); j++ {
		for i := 0; i < f.Nx(); i++ {
			t := 0.5
			if span > 0 {
				t = (f.At(i, j) - s.Min) / span
			}
			img.SetRGBA(i, j, sciColor(t))
		}
	}
	return img, nil
}

// SymmetricHeatmap renders f with a linear scale over [-r, r] where
// r = max(|min|, |max|), so zero always sits mid-ramp. Suited to signed
// fields like vorticity, where the sign carries meaning. A zero field
// renders mid-ramp.
func SymmetricHeatmap(f *field.Field) (*image.RGBA, error) {
	if f == nil || f.Len() == 0 {
		return nil, errEmptyField
	}

	r := field.MaxAbs(f)

	img := image.NewRGBA(image.Rect(0, 0, f.Nx(), f.Ny()))
	for j := 0; j < f.Ny(); j++ {
		for i := 0; i < f.Nx(); i++ {
			t := 0.5
			if r > 0 {
				t = (f.At(i, j) + r) / (2 * r)
			}
			img.SetRGBA(i, j, sciColor(t))
		}
	}
	return img, nil
}

// ResidualMap renders |f| on a log10 scale spanning [1e-15, peak], keeping
// residual structure far below any practical tolerance visible. A field at
// or below the floor everywhere renders mid-ramp.
func ResidualMap(f *field.Field) (*image.RGBA, error) {
	if f == nil || f.Len() == 0 {
		return nil, errEmptyField
	}

	peak := field.MaxAbs(f)
	if peak < residualFloor {
		peak = residualFloor
	}
	logFloor := math.Log10(residualFloor)
	span := math.Log10(peak) - logFloor

	img := image.NewRGBA(image.Rect(0, 0, f.Nx(), f.Ny()))
	for j := 0; j < f.Ny(); j++ {
		for i := 0; i < f.Nx(); i++ {
			t := 0.5
			if span > 0 {
				a := math.Abs(f.At(i, j))
				if a < residualFloor {
					a = residualFloor
				}
				t = (math.Log10(a) - logFloor) / span
			}
			img.SetRGBA(i, j, sciColor(t))
		}
	}
	return img, nil
}

// WritePNG encodes img into a PNG file at path.
func WritePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
