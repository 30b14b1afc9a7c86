package webdemo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ledwave/dsp/core"
	"github.com/cwbudde/algo-ledwave/dsp/phase"
)

// Player advances phase for one scene and evaluates frames on demand.
type Player struct {
	model    *phase.Model
	scene    phase.Scene
	timeline phase.Timeline

	phase      float64
	running    bool
	loop       bool
	withCurves bool

	frame phase.Frame
}

// NewPlayer creates a stopped player positioned at phase 0.
func NewPlayer(model *phase.Model, scene phase.Scene, opts ...core.AnimationOption) (*Player, error) {
	if model == nil {
		return nil, fmt.Errorf("player model must not be nil")
	}
	if len(scene.Channels()) == 0 {
		return nil, fmt.Errorf("player scene %q has no channels", scene.Name)
	}
	tl, err := phase.NewTimeline(model.Len(), opts...)
	if err != nil {
		return nil, err
	}
	return &Player{
		model:      model,
		scene:      scene,
		timeline:   tl,
		withCurves: true,
	}, nil
}

// NewDefaultPlayer plays the named preset on the default sine table.
func NewDefaultPlayer(sceneName string, opts ...core.AnimationOption) (*Player, error) {
	sc, ok := phase.LookupPreset(sceneName)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", sceneName)
	}
	m, err := phase.NewDefaultModel()
	if err != nil {
		return nil, err
	}
	return NewPlayer(m, sc, opts...)
}

// Scene returns the scene being played.
func (p *Player) Scene() phase.Scene { return p.scene }

// Timeline returns the current timing.
func (p *Player) Timeline() phase.Timeline { return p.timeline }

// Phase returns the current phase in table steps.
func (p *Player) Phase() float64 { return p.phase }

// Running reports whether Advance moves the phase.
func (p *Player) Running() bool { return p.running }

// Loop reports whether playback continues past one sweep.
func (p *Player) Loop() bool { return p.loop }

// Elapsed returns the playback time in seconds that corresponds to Phase.
func (p *Player) Elapsed() float64 { return p.phase / p.timeline.Rate() }

// SetScene switches scenes and rewinds to phase 0.
func (p *Player) SetScene(scene phase.Scene) error {
	if len(scene.Channels()) == 0 {
		return fmt.Errorf("player scene %q has no channels", scene.Name)
	}
	p.scene = scene
	p.phase = 0
	return nil
}

// SetRunning starts or stops playback. Starting a finished, non-looping
// sweep rewinds it.
func (p *Player) SetRunning(running bool) {
	if running && !p.running && !p.loop && p.finished() {
		p.phase = 0
	}
	p.running = running
}

// SetLoop enables continuous playback. Phase keeps growing across sweeps;
// the table lookup wraps it.
func (p *Player) SetLoop(loop bool) { p.loop = loop }

// SetCurves selects whether Frame also computes per-channel curves.
func (p *Player) SetCurves(enabled bool) { p.withCurves = enabled }

// SetTransport updates tick rate and time scale. Non-positive values keep
// the current setting. The phase is preserved.
func (p *Player) SetTransport(tickRateHz, timeScale float64) error {
	cfg := p.timeline.Config()
	tl, err := phase.NewTimeline(p.timeline.Length(),
		core.WithTickRate(cfg.TickRateHz),
		core.WithTimeScale(cfg.TimeScale),
		core.WithFrameRate(cfg.FrameRate),
		core.WithTickRate(tickRateHz),
		core.WithTimeScale(timeScale),
	)
	if err != nil {
		return err
	}
	p.timeline = tl
	return nil
}

// Seek moves the phase directly. Scrubbing backwards is allowed here only;
// Advance never decreases the phase.
func (p *Player) Seek(ph float64) {
	if math.IsNaN(ph) || math.IsInf(ph, 0) {
		return
	}
	if !p.loop {
		ph = core.Clamp(ph, 0, float64(p.timeline.Length()))
	}
	p.phase = ph
}

// Advance moves the phase forward by dt seconds of playback and returns
// the new phase. A non-looping sweep stops at the timeline length; a
// phase already past it (left over from looping) stops where it is.
func (p *Player) Advance(dt float64) float64 {
	if !p.running || !(dt > 0) || math.IsInf(dt, 0) {
		return p.phase
	}
	if !p.loop && p.finished() {
		p.running = false
		return p.phase
	}
	p.phase += dt * p.timeline.Rate()
	if !p.loop && p.finished() {
		p.phase = float64(p.timeline.Length())
		p.running = false
	}
	return p.phase
}

// Frame evaluates the scene at the current phase. The returned frame is
// reused by the next call.
func (p *Player) Frame() *phase.Frame {
	p.scene.FrameInto(&p.frame, p.model, p.phase, p.withCurves)
	return &p.frame
}

// Labels returns one legend label per channel.
func (p *Player) Labels() []string {
	chs := p.scene.Channels()
	out := make([]string, len(chs))
	for i, ch := range chs {
		out[i] = ch.Label()
	}
	return out
}

func (p *Player) finished() bool {
	return p.phase >= float64(p.timeline.Length())
}
