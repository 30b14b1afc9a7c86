package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Schedule is the sealed set of channel behaviours.
type Schedule interface {
	fmt.Stringer
	sealed()
}

// Disabled keeps a channel dark regardless of phase.
type Disabled struct{}

// FixedMax keeps a channel at full intensity regardless of phase.
type FixedMax struct{}

// PhaseOffset samples the envelope at a position shifted by Offset.
type PhaseOffset struct {
	Offset float64
}

func (Disabled) sealed()    {}
func (FixedMax) sealed()    {}
func (PhaseOffset) sealed() {}

func (Disabled) String() string { return "off" }
func (FixedMax) String() string { return "max" }
func (p PhaseOffset) String() string {
	return strconv.FormatFloat(p.Offset, 'g', -1, 64)
}

// Off returns the Disabled schedule.
func Off() Schedule { return Disabled{} }

// Max returns the FixedMax schedule.
func Max() Schedule { return FixedMax{} }

// Offset returns a PhaseOffset schedule.
func Offset(offset float64) Schedule { return PhaseOffset{Offset: offset} }

// Validate reports whether s is a usable schedule. A nil schedule or a
// non-finite offset wraps ErrInvalidSchedule.
func Validate(s Schedule) error {
	switch v := s.(type) {
	case Disabled, FixedMax:
		return nil
	case PhaseOffset:
		if math.IsNaN(v.Offset) || math.IsInf(v.Offset, 0) {
			return fmt.Errorf("%w: offset must be finite: %f", ErrInvalidSchedule, v.Offset)
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidSchedule, s)
	}
}

// Parse converts "off", "max" or a finite number into a Schedule.
// Matching is case-insensitive; "none" and "disabled" are accepted for off.
func Parse(text string) (Schedule, error) {
	switch t := strings.ToLower(strings.TrimSpace(text)); t {
	case "off", "none", "disabled":
		return Disabled{}, nil
	case "max", "on":
		return FixedMax{}, nil
	case "":
		return nil, fmt.Errorf("%w: empty", ErrInvalidSchedule)
	default:
		offset, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSchedule, text)
		}
		s := PhaseOffset{Offset: offset}
		if err := Validate(s); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// ParseList parses a comma-separated list such as "off,0,128,max".
func ParseList(text string) ([]Schedule, error) {
	parts := strings.Split(text, ",")
	out := make([]Schedule, 0, len(parts))
	for i, p := range parts {
		s, err := Parse(p)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}
