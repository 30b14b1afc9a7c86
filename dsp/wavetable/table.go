package wavetable

import (
	"fmt"
	"slices"
)

// Table is an immutable cyclic envelope of non-negative samples.
type Table struct {
	values []int
	peak   int
}

// New copies values into a new table.
func New(values []int) (*Table, error) {
	if len(values) == 0 {
		return nil, ErrEmptyTable
	}
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("index %d value %d: %w", i, v, ErrNegativeValue)
		}
	}
	return &Table{
		values: slices.Clone(values),
		peak:   slices.Max(values),
	}, nil
}

// MustNew is like New but panics on invalid input.
// It is meant for package-level table constants.
func MustNew(values []int) *Table {
	t, err := New(values)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of samples in one cycle.
func (t *Table) Len() int {
	return len(t.values)
}

// ValueAt returns the sample at index wrapped into [0, Len()).
func (t *Table) ValueAt(index int) float64 {
	return float64(t.values[Wrap(index, len(t.values))])
}

// Peak returns the largest raw sample, which may be 0.
func (t *Table) Peak() int {
	return t.peak
}

// MaxValue returns the normalization denominator: the largest sample,
// floored at 1 so that all-zero tables never divide by zero.
func (t *Table) MaxValue() float64 {
	if t.peak < 1 {
		return 1
	}
	return float64(t.peak)
}

// Values returns a copy of the table samples.
func (t *Table) Values() []int {
	return slices.Clone(t.values)
}

// Floats returns the samples converted to float64.
func (t *Table) Floats() []float64 {
	out := make([]float64, len(t.values))
	for i, v := range t.values {
		out[i] = float64(v)
	}
	return out
}

// Wrap maps index into [0, n) using floor-style modulo.
// n must be > 0.
func Wrap(index, n int) int {
	m := index % n
	if m < 0 {
		m += n
	}
	return m
}
