package field

import (
	"math"

	flowfield "github.com/cwbudde/algo-flow/flow/field"
)

// Stats holds scalar-field statistics.
type Stats struct {
	Points   int
	Mean     float64
	RMS      float64
	Min      float64
	MinX     int
	MinY     int
	Max      float64
	MaxX     int
	MaxY     int
	Peak     float64 // max(|max|, |min|)
	Range    float64 // max - min
	Energy   float64 // sum of squares
	Power    float64 // energy / points
	Variance float64
	Skewness float64
	Kurtosis float64
}

// Calculate computes all field statistics in a single pass using Welford's
// online algorithm for numerical stability on higher-order moments.
// A nil or empty field yields a zero-valued Stats.
func Calculate(f *flowfield.Field) Stats {
	if f == nil || f.Len() == 0 {
		return Stats{}
	}

	data := f.Data()
	nx := f.Nx()

	// Welford accumulators.
	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	// Running aggregates.
	var (
		sumSq  float64
		maxVal = data[0]
		maxPos int
		minVal = data[0]
		minPos int
	)

	for i, x := range data {
		// --- Welford update for moments ---
		ni := float64(i + 1) // 1-based count after this sample
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i) // delta * delta_n * (n-1)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		// --- Energy (sum of squares) ---
		sumSq += x * x

		// --- Min / Max ---
		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	n := len(data)
	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Points:   n,
		Mean:     mean,
		RMS:      math.Sqrt(sumSq / nf),
		Min:      minVal,
		MinX:     minPos % nx,
		MinY:     minPos / nx,
		Max:      maxVal,
		MaxX:     maxPos % nx,
		MaxY:     maxPos / nx,
		Peak:     math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Range:    maxVal - minVal,
		Energy:   sumSq,
		Power:    sumSq / nf,
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// RMS returns the root-mean-square of the field samples.
func RMS(f *flowfield.Field) float64 {
	if f == nil || f.Len() == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range f.Data() {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(f.Len()))
}

// Mean returns the mean of the field samples.
func Mean(f *flowfield.Field) float64 {
	if f == nil || f.Len() == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range f.Data() {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(f.Len())
}
