package interp

import "fmt"

// Mode selects a fractional interpolation algorithm.
type Mode int

const (
	// Linear blends the two neighbouring samples.
	Linear Mode = iota
	// Hermite uses the 4-point cubic Hermite kernel.
	Hermite
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Hermite:
		return "hermite"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Linear || m == Hermite
}

// ParseMode converts a mode name into a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "linear", "":
		return Linear, nil
	case "hermite":
		return Hermite, nil
	default:
		return Linear, fmt.Errorf("unknown interpolation mode: %q", name)
	}
}

// Linear2 interpolates between x0 and x1 at t in [0,1].
// The result is exactly x0 at t=0.
func Linear2(t, x0, x1 float64) float64 {
	return (1-t)*x0 + t*x1
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
