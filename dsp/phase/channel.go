package phase

import (
	"fmt"

	"github.com/cwbudde/algo-ledwave/dsp/schedule"
)

// Channel is an immutable named output with its schedule.
type Channel struct {
	name     string
	schedule schedule.Schedule
}

// NewChannel validates s and returns a channel.
func NewChannel(name string, s schedule.Schedule) (Channel, error) {
	if err := schedule.Validate(s); err != nil {
		return Channel{}, fmt.Errorf("channel %q: %w", name, err)
	}
	return Channel{name: name, schedule: s}, nil
}

// MustChannel is like NewChannel but panics on an invalid schedule.
func MustChannel(name string, s schedule.Schedule) Channel {
	c, err := NewChannel(name, s)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the channel label.
func (c Channel) Name() string { return c.name }

// Schedule returns the channel schedule.
func (c Channel) Schedule() schedule.Schedule { return c.schedule }

// Label returns the graph caption used by the diagrams,
// e.g. "LED1 (t + 55)", "LED0 (off)" or "LED3 (max)".
func (c Channel) Label() string {
	switch v := c.schedule.(type) {
	case schedule.Disabled:
		return c.name + " (off)"
	case schedule.FixedMax:
		return c.name + " (max)"
	case schedule.PhaseOffset:
		return fmt.Sprintf("%s (t + %s)", c.name, v)
	default:
		return c.name
	}
}

// Animated reports whether the channel depends on phase.
func (c Channel) Animated() bool {
	_, ok := c.schedule.(schedule.PhaseOffset)
	return ok
}
