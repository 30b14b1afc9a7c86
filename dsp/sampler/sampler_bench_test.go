package sampler

import (
	"testing"

	"github.com/cwbudde/algo-ledwave/dsp/interp"
	"github.com/cwbudde/algo-ledwave/dsp/wavetable"
)

func BenchmarkShiftedCurveInto(b *testing.B) {
	for _, mode := range []interp.Mode{interp.Linear, interp.Hermite} {
		b.Run(mode.String(), func(b *testing.B) {
			s, err := New(wavetable.Sine256(), WithMode(mode))
			if err != nil {
				b.Fatal(err)
			}
			dst := make([]float64, s.Len())
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = s.ShiftedCurveInto(dst, 55, float64(i)*0.37, Forward)
			}
		})
	}
}
