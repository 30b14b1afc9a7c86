package phase

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-ledwave/dsp/sampler"
	"github.com/cwbudde/algo-ledwave/dsp/schedule"
)

// SineSpeed is the per-LED offset used by the feed animations, in table
// steps.
const SineSpeed = 55

// Scene is a named, immutable set of channels with a scroll direction.
type Scene struct {
	Name      string
	Title     string
	Direction sampler.Direction
	// Animated is false for scenes that are shown at phase 0 only.
	Animated bool
	channels []Channel
}

// NewScene validates channels and builds a scene.
func NewScene(name, title string, dir sampler.Direction, animated bool, channels ...Channel) (Scene, error) {
	if len(channels) == 0 {
		return Scene{}, fmt.Errorf("scene %q must have at least one channel", name)
	}
	for _, ch := range channels {
		if err := schedule.Validate(ch.schedule); err != nil {
			return Scene{}, fmt.Errorf("scene %q channel %q: %w", name, ch.name, err)
		}
	}
	return Scene{
		Name:      name,
		Title:     title,
		Direction: dir,
		Animated:  animated,
		channels:  append([]Channel(nil), channels...),
	}, nil
}

// Channels returns a copy of the scene channels.
func (sc Scene) Channels() []Channel {
	return append([]Channel(nil), sc.channels...)
}

// Frame evaluates the scene at phase. Static scenes ignore phase and are
// always evaluated at 0.
func (sc Scene) Frame(m *Model, phase float64, withCurves bool) Frame {
	if !sc.Animated {
		phase = 0
	}
	return m.Evaluate(sc.channels, phase, sc.Direction, withCurves)
}

// FrameInto is Frame reusing the slices already held by f.
func (sc Scene) FrameInto(f *Frame, m *Model, phase float64, withCurves bool) {
	if !sc.Animated {
		phase = 0
	}
	m.EvaluateInto(f, sc.channels, phase, sc.Direction, withCurves)
}

func leds(schedules ...schedule.Schedule) []Channel {
	out := make([]Channel, len(schedules))
	for i, s := range schedules {
		out[i] = MustChannel(fmt.Sprintf("LED%d", i), s)
	}
	return out
}

func mustScene(name, title string, dir sampler.Direction, animated bool, channels []Channel) Scene {
	sc, err := NewScene(name, title, dir, animated, channels...)
	if err != nil {
		panic(err)
	}
	return sc
}

var presets = []Scene{
	mustScene("idle-indexed", "Idle (indexed): LED3 steady on", sampler.Forward, false,
		leds(schedule.Off(), schedule.Off(), schedule.Off(), schedule.Max())),
	mustScene("idle-unindexed", "Idle (unindexed): LED1/LED2 180° apart", sampler.Forward, true,
		leds(schedule.Off(), schedule.Offset(0), schedule.Offset(128), schedule.Off())),
	mustScene("default-sine", "Default sine: 180° pair offsets", sampler.Forward, true,
		leds(schedule.Offset(0), schedule.Offset(128), schedule.Offset(256), schedule.Offset(384))),
	mustScene("static", fmt.Sprintf("LED Phase Offsets (sine_speed = %d)", SineSpeed), sampler.Forward, false,
		feedOffsets(false)),
	mustScene("scroll", "LED Phase Offsets (left-to-right scroll)", sampler.Forward, true,
		feedOffsets(false)),
	mustScene("scroll-reverse", "LED Phase Offsets (right-to-left scroll)", sampler.Reverse, true,
		feedOffsets(false)),
	mustScene("feed-backward", "Backward feed: reversed LED order", sampler.Reverse, true,
		feedOffsets(true)),
}

// feedOffsets returns LED0..LED3 spaced SineSpeed apart; reversed puts the
// largest offset on LED0.
func feedOffsets(reversed bool) []Channel {
	s := make([]schedule.Schedule, 4)
	for i := range s {
		k := i
		if reversed {
			k = len(s) - 1 - i
		}
		s[i] = schedule.Offset(float64(k * SineSpeed))
	}
	return leds(s...)
}

// Presets returns the documented LED scenes in display order.
func Presets() []Scene {
	return append([]Scene(nil), presets...)
}

// PresetNames returns the preset names sorted alphabetically.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, sc := range presets {
		names[i] = sc.Name
	}
	sort.Strings(names)
	return names
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Scene, bool) {
	for _, sc := range presets {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scene{}, false
}
