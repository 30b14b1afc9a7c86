package testutil

import "github.com/cwbudde/algo-ledwave/dsp/wavetable"

// DiamondTable returns the 4-entry table [0, 10, 20, 10] (peak 20).
func DiamondTable() *wavetable.Table {
	return wavetable.MustNew([]int{0, 10, 20, 10})
}

// ZeroTable returns an all-zero table of length n.
func ZeroTable(n int) *wavetable.Table {
	return wavetable.MustNew(make([]int, n))
}

// RampTable returns the table [0, 1, ..., n-1].
func RampTable(n int) *wavetable.Table {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return wavetable.MustNew(values)
}

// PhaseGrid returns phases spanning several cycles of length n, including
// negative, fractional and far-away values.
func PhaseGrid(n int) []float64 {
	fn := float64(n)
	return []float64{
		0, 0.25, 0.5, 1, 1.75,
		fn / 4, fn / 2, fn - 0.5, fn, fn + 0.125,
		3*fn + 0.9, -0.5, -fn / 3, -2*fn - 0.01, 1e4 + 0.3,
	}
}
