package phase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ledwave/dsp/interp"
	"github.com/cwbudde/algo-ledwave/dsp/sampler"
	"github.com/cwbudde/algo-ledwave/dsp/schedule"
	"github.com/cwbudde/algo-ledwave/dsp/wavetable"
	"github.com/cwbudde/algo-ledwave/internal/testutil"
)

var directions = []sampler.Direction{sampler.Forward, sampler.Reverse}

func newModel(t *testing.T, tab *wavetable.Table, opts ...Option) *Model {
	t.Helper()
	s, err := sampler.New(tab)
	require.NoError(t, err)
	m, err := NewModel(s, opts...)
	require.NoError(t, err)
	return m
}

func allSchedules() []schedule.Schedule {
	return []schedule.Schedule{
		schedule.Off(),
		schedule.Max(),
		schedule.Offset(0),
		schedule.Offset(1.5),
		schedule.Offset(55),
		schedule.Offset(-128),
		schedule.Offset(384),
	}
}

func TestNewModelValidation(t *testing.T) {
	_, err := NewModel(nil)
	require.Error(t, err)

	s, err := sampler.New(testutil.DiamondTable())
	require.NoError(t, err)
	_, err = NewModel(s, WithReferenceIndex(math.NaN()))
	require.Error(t, err)
}

func TestDefaultReferenceIndex(t *testing.T) {
	require.Equal(t, 1.0, newModel(t, testutil.DiamondTable()).ReferenceIndex())

	m, err := NewDefaultModel()
	require.NoError(t, err)
	require.Equal(t, 64.0, m.ReferenceIndex())
	require.Equal(t, 256, m.Len())
	require.Same(t, wavetable.Sine256(), m.Table())

	// N=5 uses integer division.
	require.Equal(t, 1.0, newModel(t, testutil.RampTable(5)).ReferenceIndex())
}

func TestIntensityConcreteScenario(t *testing.T) {
	m := newModel(t, testutil.DiamondTable())
	require.Equal(t, 0.5, m.IntensityAt(schedule.Offset(0), 0, sampler.Forward))
	require.Equal(t, 1.0, m.IntensityAt(schedule.Offset(1), 0, sampler.Forward))
	require.Equal(t, 0.0, m.IntensityAt(schedule.Offset(0), 1, sampler.Forward))
	require.Equal(t, 1.0, m.IntensityAt(schedule.Offset(0), 1, sampler.Reverse))
	require.InDelta(t, 0.25, m.IntensityAt(schedule.Offset(0), 0.5, sampler.Forward), 1e-12)
	require.Equal(t, 0.5, m.IntensityAtIndex(schedule.Offset(0), 3, 0, sampler.Forward))
}

func TestDefaultModelPeakAndFloor(t *testing.T) {
	m, err := NewDefaultModel()
	require.NoError(t, err)
	require.Equal(t, 1.0, m.IntensityAt(schedule.Offset(0), 0, sampler.Forward))
	require.Equal(t, 0.0, m.IntensityAt(schedule.Offset(128), 0, sampler.Forward))
	require.Equal(t, 1.0, m.IntensityAt(schedule.Offset(0), 256, sampler.Reverse))
}

func TestBoundedIntensity(t *testing.T) {
	tables := []*wavetable.Table{testutil.DiamondTable(), testutil.ZeroTable(4), wavetable.Sine256()}
	for _, tab := range tables {
		for _, mode := range []interp.Mode{interp.Linear, interp.Hermite} {
			s, err := sampler.New(tab, sampler.WithMode(mode))
			require.NoError(t, err)
			m, err := NewModel(s)
			require.NoError(t, err)

			for _, sch := range allSchedules() {
				for _, dir := range directions {
					for _, p := range testutil.PhaseGrid(tab.Len()) {
						v := m.IntensityAt(sch, p, dir)
						require.GreaterOrEqualf(t, v, 0.0, "%v %v %v", sch, dir, p)
						require.LessOrEqualf(t, v, 1.0, "%v %v %v", sch, dir, p)
					}
				}
			}
		}
	}
}

func TestDisabledAndFixedMaxInvariance(t *testing.T) {
	for _, tab := range []*wavetable.Table{testutil.DiamondTable(), testutil.ZeroTable(3), wavetable.Sine256()} {
		m := newModel(t, tab)
		for _, dir := range directions {
			for _, p := range testutil.PhaseGrid(tab.Len()) {
				require.Equal(t, 0.0, m.IntensityAt(schedule.Off(), p, dir))
				require.Equal(t, 1.0, m.IntensityAt(schedule.Max(), p, dir))
			}
		}
	}
}

func TestCurveFor(t *testing.T) {
	m := newModel(t, testutil.DiamondTable())
	for _, p := range testutil.PhaseGrid(4) {
		require.Equal(t, []float64{0, 0, 0, 0}, m.CurveFor(schedule.Off(), p, sampler.Forward))
		require.Equal(t, []float64{20, 20, 20, 20}, m.CurveFor(schedule.Max(), p, sampler.Forward))
	}
	testutil.RequireSliceNearlyEqual(t,
		m.CurveFor(schedule.Offset(1), 0, sampler.Forward),
		m.Sampler().ShiftedCurve(1, 0, sampler.Forward), 0)
	testutil.RequireSliceNearlyEqual(t,
		m.CurveFor(schedule.Offset(2), 0.75, sampler.Reverse),
		m.Sampler().ShiftedCurve(2, 0.75, sampler.Reverse), 0)
}

func TestCurveForZeroTableUsesFloor(t *testing.T) {
	m := newModel(t, testutil.ZeroTable(3))
	require.Equal(t, []float64{1, 1, 1}, m.CurveFor(schedule.Max(), 7, sampler.Forward))
	require.Equal(t, []float64{0, 0, 0}, m.CurveFor(schedule.Offset(1), 7, sampler.Forward))
}

func TestCurveLength(t *testing.T) {
	for _, tab := range []*wavetable.Table{testutil.DiamondTable(), testutil.RampTable(7), wavetable.Sine256()} {
		m := newModel(t, tab)
		for _, sch := range allSchedules() {
			for _, dir := range directions {
				require.Len(t, m.CurveFor(sch, 12.5, dir), tab.Len())
				require.Len(t, m.NormalizedCurveFor(sch, 12.5, dir), tab.Len())
			}
		}
	}
}

func TestNormalizedCurveFor(t *testing.T) {
	m := newModel(t, testutil.DiamondTable())
	testutil.RequireSliceNearlyEqual(t,
		m.NormalizedCurveFor(schedule.Offset(0), 0, sampler.Forward),
		[]float64{0, 0.5, 1, 0.5}, 1e-15)
	testutil.RequireSliceNearlyEqual(t,
		m.NormalizedCurveFor(schedule.Max(), 3, sampler.Reverse),
		[]float64{1, 1, 1, 1}, 1e-15)
}

func TestCurveForInto(t *testing.T) {
	m := newModel(t, testutil.DiamondTable())
	dst := []float64{9, 9, 9, 9}
	require.NoError(t, m.CurveForInto(dst, schedule.Off(), 0, sampler.Forward))
	require.Equal(t, []float64{0, 0, 0, 0}, dst)

	require.NoError(t, m.CurveForInto(dst, schedule.Offset(0), 1, sampler.Forward))
	require.Equal(t, []float64{10, 0, 10, 20}, dst)

	require.Error(t, m.CurveForInto(make([]float64, 5), schedule.Max(), 0, sampler.Forward))
}

func TestDeterminism(t *testing.T) {
	m, err := NewDefaultModel()
	require.NoError(t, err)
	for _, sch := range allSchedules() {
		for _, p := range testutil.PhaseGrid(256) {
			a := m.IntensityAt(sch, p, sampler.Forward)
			b := m.IntensityAt(sch, p, sampler.Forward)
			require.Equal(t, a, b)
			require.Equal(t, m.CurveFor(sch, p, sampler.Reverse), m.CurveFor(sch, p, sampler.Reverse))
		}
	}
}

func TestNilScheduleIsRejected(t *testing.T) {
	m := newModel(t, testutil.DiamondTable())
	require.Panics(t, func() { m.IntensityAt(nil, 0, sampler.Forward) })
	require.Panics(t, func() { m.CurveFor(nil, 0, sampler.Forward) })
}

func TestCurveForMatchesSamplerCurve(t *testing.T) {
	for _, mode := range []interp.Mode{interp.Linear, interp.Hermite} {
		s, err := sampler.New(wavetable.Sine256(), sampler.WithMode(mode))
		require.NoError(t, err)
		m, err := NewModel(s)
		require.NoError(t, err)

		for _, dir := range directions {
			for _, p := range testutil.PhaseGrid(256) {
				got := m.CurveFor(schedule.Offset(55), p, dir)
				want := s.ShiftedCurve(55, p, dir)
				diff, err := testutil.MaxAbsDiff(got, want)
				require.NoError(t, err)
				require.Zerof(t, diff, "mode=%v dir=%v phase=%v", mode, dir, p)

				norm := m.NormalizedCurveFor(schedule.Offset(55), p, dir)
				scaled := make([]float64, len(want))
				for i, v := range want {
					scaled[i] = v / s.Table().MaxValue()
				}
				diff, err = testutil.MaxAbsDiff(norm, scaled)
				require.NoError(t, err)
				require.LessOrEqual(t, diff, 1e-15)
			}
		}
	}
}
