package sampler

import "fmt"

// Direction selects how phase shifts the sampled position.
type Direction int

const (
	// Forward samples at index + offset - phase.
	Forward Direction = iota
	// Reverse samples at index + offset + phase.
	Reverse
)

// Sign returns the factor applied to phase: -1 for Forward, +1 for Reverse.
func (d Direction) Sign() float64 {
	if d == Reverse {
		return 1
	}
	return -1
}

// Shift returns position offset by phase according to d.
func (d Direction) Shift(position, phase float64) float64 {
	return position + d.Sign()*phase
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts "forward" or "reverse" into a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "forward", "fwd", "":
		return Forward, nil
	case "reverse", "rev":
		return Reverse, nil
	default:
		return Forward, fmt.Errorf("unknown direction: %q", name)
	}
}
