package phase

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ledwave/dsp/core"
	"github.com/cwbudde/algo-ledwave/dsp/sampler"
	"github.com/cwbudde/algo-ledwave/dsp/schedule"
	"github.com/cwbudde/algo-ledwave/dsp/wavetable"
)

// Option configures a Model.
type Option func(*Model) error

// WithReferenceIndex sets the table position sampled for scalar intensity.
func WithReferenceIndex(index float64) Option {
	return func(m *Model) error {
		if !core.IsFinite(index) {
			return fmt.Errorf("phase reference index must be finite: %f", index)
		}
		m.ref = index
		return nil
	}
}

// Model evaluates channel schedules against a sampler.
type Model struct {
	s   *sampler.Sampler
	ref float64
}

// NewModel returns a model over s. The reference index defaults to
// Len()/4 (integer division).
func NewModel(s *sampler.Sampler, opts ...Option) (*Model, error) {
	if s == nil {
		return nil, fmt.Errorf("phase sampler must not be nil")
	}
	m := &Model{s: s, ref: float64(s.Len() / 4)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewDefaultModel returns a linear model over the shared 256-entry LED table.
func NewDefaultModel(opts ...Option) (*Model, error) {
	s, err := sampler.New(wavetable.Sine256())
	if err != nil {
		return nil, err
	}
	return NewModel(s, opts...)
}

// Sampler returns the underlying sampler.
func (m *Model) Sampler() *sampler.Sampler { return m.s }

// Table returns the underlying table.
func (m *Model) Table() *wavetable.Table { return m.s.Table() }

// Len returns the table length.
func (m *Model) Len() int { return m.s.Len() }

// ReferenceIndex returns the position sampled by IntensityAt.
func (m *Model) ReferenceIndex() float64 { return m.ref }

// IntensityAt returns the brightness of s at phase, sampled at the model's
// reference index.
func (m *Model) IntensityAt(s schedule.Schedule, phase float64, dir sampler.Direction) float64 {
	return m.IntensityAtIndex(s, m.ref, phase, dir)
}

// IntensityAtIndex is IntensityAt with an explicit reference index.
//
// Disabled is 0 and FixedMax is 1 without reading the table. PhaseOffset
// samples reference + offset -/+ phase and divides by the table's
// MaxValue; the result is clamped to [0, 1].
func (m *Model) IntensityAtIndex(s schedule.Schedule, reference, phase float64, dir sampler.Direction) float64 {
	switch v := s.(type) {
	case schedule.Disabled:
		return 0
	case schedule.FixedMax:
		return 1
	case schedule.PhaseOffset:
		sample := m.s.InterpolatedValueAt(dir.Shift(reference+v.Offset, phase))
		return core.Clamp01(sample / m.s.Table().MaxValue())
	default:
		panic(fmt.Sprintf("phase: unsupported schedule %T", s))
	}
}

// CurveFor returns one cycle of raw table values for s.
//
// Disabled yields zeros, FixedMax yields MaxValue at every index and
// PhaseOffset yields the sampler's shifted curve.
func (m *Model) CurveFor(s schedule.Schedule, phase float64, dir sampler.Direction) []float64 {
	out := make([]float64, m.s.Len())
	m.fillCurve(out, s, phase, dir)
	return out
}

// CurveForInto is the allocation-free form of CurveFor.
// dst must have length Len().
func (m *Model) CurveForInto(dst []float64, s schedule.Schedule, phase float64, dir sampler.Direction) error {
	if len(dst) != m.s.Len() {
		return fmt.Errorf("phase curve length must be %d: %d", m.s.Len(), len(dst))
	}
	m.fillCurve(dst, s, phase, dir)
	return nil
}

// NormalizedCurveFor returns CurveFor scaled by 1/MaxValue.
func (m *Model) NormalizedCurveFor(s schedule.Schedule, phase float64, dir sampler.Direction) []float64 {
	raw := m.CurveFor(s, phase, dir)
	out := make([]float64, len(raw))
	vecmath.ScaleBlock(out, raw, 1/m.s.Table().MaxValue())
	return out
}

func (m *Model) fillCurve(dst []float64, s schedule.Schedule, phase float64, dir sampler.Direction) {
	switch v := s.(type) {
	case schedule.Disabled:
		core.Fill(dst, 0)
	case schedule.FixedMax:
		core.Fill(dst, m.s.Table().MaxValue())
	case schedule.PhaseOffset:
		shift := dir.Shift(v.Offset, phase)
		for i := range dst {
			dst[i] = m.s.InterpolatedValueAt(float64(i) + shift)
		}
	default:
		panic(fmt.Sprintf("phase: unsupported schedule %T", s))
	}
}
