package phase

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ledwave/dsp/core"
)

// Timeline maps playback time to phase for one sweep of the table.
type Timeline struct {
	length int
	cfg    core.AnimationConfig
}

// NewTimeline returns a timeline sweeping phase from 0 to length.
func NewTimeline(length int, opts ...core.AnimationOption) (Timeline, error) {
	if length <= 0 {
		return Timeline{}, fmt.Errorf("timeline length must be > 0: %d", length)
	}
	return Timeline{length: length, cfg: core.ApplyAnimationOptions(opts...)}, nil
}

// Config returns the animation timing.
func (tl Timeline) Config() core.AnimationConfig { return tl.cfg }

// Length returns the final phase value.
func (tl Timeline) Length() int { return tl.length }

// Duration returns the sweep length in seconds:
// length / TickRateHz * TimeScale.
func (tl Timeline) Duration() float64 {
	return float64(tl.length) / tl.cfg.TickRateHz * tl.cfg.TimeScale
}

// Rate returns the phase advance per second of playback.
func (tl Timeline) Rate() float64 {
	return tl.cfg.TickRateHz / tl.cfg.TimeScale
}

// PhaseAt returns the phase at playback time t, rising linearly from 0 at
// t <= 0 to Length() at t >= Duration().
func (tl Timeline) PhaseAt(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= tl.Duration() {
		return float64(tl.length)
	}
	return t * tl.Rate()
}

// FrameCount returns the number of frames rendered for one sweep,
// including both endpoints.
func (tl Timeline) FrameCount() int {
	return int(math.Ceil(tl.Duration()*tl.cfg.FrameRate)) + 1
}

// Frames returns the phase of every frame of one sweep. The first value is
// 0, the last is Length(), and the sequence is non-decreasing.
func (tl Timeline) Frames() []float64 {
	n := tl.FrameCount()
	out := make([]float64, n)
	step := 1 / tl.cfg.FrameRate
	for i := range out {
		out[i] = tl.PhaseAt(float64(i) * step)
	}
	out[n-1] = float64(tl.length)
	return out
}
