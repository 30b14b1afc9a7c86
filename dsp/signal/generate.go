package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// RaisedSine generates one cycle of peak * (1 + sin(2*pi*i/n)) / 2.
// The maximum falls at i = n/4, the minimum (0) at i = 3n/4.
func RaisedSine(n int, peak float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("raised sine length must be > 0: %d", n)
	}
	if peak < 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("raised sine peak must be >= 0 and finite: %f", peak)
	}
	out := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		out[i] = 0.5 * peak * (1 + math.Sin(step*float64(i)))
	}
	return out, nil
}

// Quantize rounds data to non-negative integers. Negative values map to 0.
func Quantize(data []float64) []int {
	out := make([]int, len(data))
	for i, v := range data {
		if v <= 0 || math.IsNaN(v) {
			continue
		}
		out[i] = int(math.Round(v))
	}
	return out
}

// QuantizedRaisedSine returns RaisedSine rounded to integer table steps.
func QuantizedRaisedSine(n, peak int) ([]int, error) {
	if peak < 0 {
		return nil, fmt.Errorf("raised sine peak must be >= 0: %d", peak)
	}
	wave, err := RaisedSine(n, float64(peak))
	if err != nil {
		return nil, err
	}
	return Quantize(wave), nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
