package wavetable

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ledwave/dsp/interp"
	"github.com/cwbudde/algo-ledwave/stats/level"
)

// DefaultHarmonics is the number of harmonics Analyze reports by default.
const DefaultHarmonics = 8

// Analysis holds level and spectral properties of one table cycle.
type Analysis struct {
	// Len is the number of table samples.
	Len int
	// Min and Peak are the smallest and largest raw samples.
	Min, Peak float64
	// PeakIndex is the first index holding Peak.
	PeakIndex int
	// Mean is the average sample, i.e. the DC level of the envelope.
	Mean float64
	// RMS is the root mean square of the raw samples.
	RMS float64
	// CrestFactor is Peak / RMS.
	CrestFactor float64
	// Duty is Mean / MaxValue: the average normalized brightness over a cycle.
	Duty float64
	// Harmonics holds single-sided amplitudes of harmonics 1..K.
	Harmonics []float64
	// THD is the harmonic distortion of harmonics 2..K relative to the fundamental.
	THD float64
	// FFTSize is the transform length used for the harmonic estimate.
	FFTSize int
}

// Analyze computes level and harmonic statistics for t.
//
// Tables whose length is not a power of two are linearly resampled to the
// next power of two before the transform; harmonic k of the cycle stays in
// bin k. maxHarmonics <= 0 selects DefaultHarmonics. The count is capped
// below the Nyquist bin.
func Analyze(t *Table, maxHarmonics int) (Analysis, error) {
	if t == nil || t.Len() == 0 {
		return Analysis{}, ErrEmptyTable
	}
	if maxHarmonics <= 0 {
		maxHarmonics = DefaultHarmonics
	}

	n := t.Len()
	lv := level.CalculateInts(t.values)
	a := Analysis{
		Len:         n,
		Min:         lv.Min,
		Peak:        lv.Max,
		PeakIndex:   lv.MaxPos,
		Mean:        lv.Mean,
		RMS:         lv.RMS,
		CrestFactor: lv.CrestFactor,
		Duty:        lv.Mean / t.MaxValue(),
	}

	fftSize := nextPowerOf2(n)
	if fftSize < 4 {
		fftSize = 4
	}
	in := make([]complex128, fftSize)
	for i := range in {
		in[i] = complex(resampleAt(t, float64(i)*float64(n)/float64(fftSize)), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Analysis{}, fmt.Errorf("wavetable fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Analysis{}, fmt.Errorf("wavetable fft: %w", err)
	}

	bins := fftSize / 2
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	pow := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	vecmath.Power(pow, re, im)

	if maxHarmonics > bins-1 {
		maxHarmonics = bins - 1
	}
	a.FFTSize = fftSize
	a.Harmonics = make([]float64, maxHarmonics)
	scale := 2 / float64(fftSize)
	for k := 1; k <= maxHarmonics; k++ {
		a.Harmonics[k-1] = mag[k] * scale
	}

	if pow[1] > 0 {
		upper := 0.0
		for k := 2; k <= maxHarmonics; k++ {
			upper += pow[k]
		}
		a.THD = mathSqrt(upper / pow[1])
	}

	return a, nil
}

func resampleAt(t *Table, pos float64) float64 {
	base := int(pos)
	return interp.Linear2(pos-float64(base), t.ValueAt(base), t.ValueAt(base+1))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
