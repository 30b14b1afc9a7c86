package core

// AnimationConfig defines the timing of a phase animation.
//
// The driver advances phase from 0 to the table length over
// tableLen / TickRateHz * TimeScale seconds and samples it FrameRate
// times per second.
type AnimationConfig struct {
	// TickRateHz is the rate of the real process being visualized.
	TickRateHz float64
	// TimeScale stretches (>1) or compresses (<1) playback.
	TimeScale float64
	// FrameRate is the number of rendered frames per second.
	FrameRate float64
}

// AnimationOption mutates an AnimationConfig.
type AnimationOption func(*AnimationConfig)

// DefaultAnimationConfig returns the LED driver timing: a 1 kHz tick,
// real-time playback and 30 frames per second.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		TickRateHz: 1000,
		TimeScale:  1,
		FrameRate:  30,
	}
}

// WithTickRate sets the tick rate in Hz.
func WithTickRate(hz float64) AnimationOption {
	return func(cfg *AnimationConfig) {
		if hz > 0 {
			cfg.TickRateHz = hz
		}
	}
}

// WithTimeScale sets the playback speed multiplier.
func WithTimeScale(scale float64) AnimationOption {
	return func(cfg *AnimationConfig) {
		if scale > 0 {
			cfg.TimeScale = scale
		}
	}
}

// WithFrameRate sets the number of frames per second.
func WithFrameRate(fps float64) AnimationOption {
	return func(cfg *AnimationConfig) {
		if fps > 0 {
			cfg.FrameRate = fps
		}
	}
}

// ApplyAnimationOptions applies zero or more options to the default config.
func ApplyAnimationOptions(opts ...AnimationOption) AnimationConfig {
	cfg := DefaultAnimationConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
