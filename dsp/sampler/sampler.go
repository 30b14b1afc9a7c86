package sampler

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ledwave/dsp/interp"
	"github.com/cwbudde/algo-ledwave/dsp/wavetable"
)

var errNilTable = errors.New("sampler table must not be nil")

// Option configures a Sampler.
type Option func(*Sampler) error

// WithMode selects the interpolation mode. The default is interp.Linear.
func WithMode(mode interp.Mode) Option {
	return func(s *Sampler) error {
		if !mode.Valid() {
			return fmt.Errorf("sampler interpolation mode is invalid: %d", mode)
		}
		s.mode = mode
		return nil
	}
}

// Sampler is an interpolating reader over an immutable table.
// It holds no mutable state and is safe for concurrent use.
type Sampler struct {
	table *wavetable.Table
	mode  interp.Mode
}

// New returns a sampler over table.
func New(table *wavetable.Table, opts ...Option) (*Sampler, error) {
	if table == nil {
		return nil, errNilTable
	}
	s := &Sampler{table: table, mode: interp.Linear}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Table returns the underlying table.
func (s *Sampler) Table() *wavetable.Table { return s.table }

// Mode returns the interpolation mode.
func (s *Sampler) Mode() interp.Mode { return s.mode }

// Len returns the table length.
func (s *Sampler) Len() int { return s.table.Len() }

// InterpolatedValueAt reads the table at a fractional index.
//
// For an integer index i the result is exactly table.ValueAt(i). Indices
// outside [0, Len()) wrap, so the read is periodic with period Len().
func (s *Sampler) InterpolatedValueAt(index float64) float64 {
	base := math.Floor(index)
	frac := index - base
	i := int(base)

	if frac == 0 {
		return s.table.ValueAt(i)
	}
	if s.mode == interp.Hermite {
		return interp.Hermite4(frac,
			s.table.ValueAt(i-1),
			s.table.ValueAt(i),
			s.table.ValueAt(i+1),
			s.table.ValueAt(i+2),
		)
	}
	return interp.Linear2(frac, s.table.ValueAt(i), s.table.ValueAt(i+1))
}

// ShiftedCurve returns one cycle sampled at i + offset -/+ phase for
// i in [0, Len()), with the sign chosen by dir.
func (s *Sampler) ShiftedCurve(offset, phase float64, dir Direction) []float64 {
	out := make([]float64, s.table.Len())
	s.fillShifted(out, offset, phase, dir)
	return out
}

// ShiftedCurveInto is the allocation-free form of ShiftedCurve.
// dst must have length Len().
func (s *Sampler) ShiftedCurveInto(dst []float64, offset, phase float64, dir Direction) error {
	if len(dst) != s.table.Len() {
		return fmt.Errorf("sampler curve length must be %d: %d", s.table.Len(), len(dst))
	}
	s.fillShifted(dst, offset, phase, dir)
	return nil
}

func (s *Sampler) fillShifted(dst []float64, offset, phase float64, dir Direction) {
	shift := dir.Shift(offset, phase)
	for i := range dst {
		dst[i] = s.InterpolatedValueAt(float64(i) + shift)
	}
}
