package phase

import (
	"github.com/cwbudde/algo-ledwave/dsp/core"
	"github.com/cwbudde/algo-ledwave/dsp/sampler"
)

// Frame is the model output for one phase value.
type Frame struct {
	Phase     float64
	Direction sampler.Direction
	// Intensities holds one value in [0, 1] per channel.
	Intensities []float64
	// Curves holds one raw cycle per channel; nil unless requested.
	Curves [][]float64
}

// Evaluate computes intensities, and curves when withCurves is set, for
// every channel at phase.
func (m *Model) Evaluate(channels []Channel, phase float64, dir sampler.Direction, withCurves bool) Frame {
	var f Frame
	m.EvaluateInto(&f, channels, phase, dir, withCurves)
	return f
}

// EvaluateInto is Evaluate reusing the slices already held by f.
func (m *Model) EvaluateInto(f *Frame, channels []Channel, phase float64, dir sampler.Direction, withCurves bool) {
	f.Phase = phase
	f.Direction = dir
	f.Intensities = core.EnsureLen(f.Intensities, len(channels))
	for i, ch := range channels {
		f.Intensities[i] = m.IntensityAt(ch.schedule, phase, dir)
	}

	if !withCurves {
		f.Curves = f.Curves[:0]
		return
	}
	if cap(f.Curves) >= len(channels) {
		f.Curves = f.Curves[:len(channels)]
	} else {
		f.Curves = make([][]float64, len(channels))
	}
	n := m.Len()
	for i, ch := range channels {
		f.Curves[i] = core.EnsureLen(f.Curves[i], n)
		m.fillCurve(f.Curves[i], ch.schedule, phase, dir)
	}
}
