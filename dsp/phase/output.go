package phase

import "github.com/cwbudde/algo-ledwave/dsp/core"

const (
	// MinFillOpacity is the fill opacity of a dark LED in the diagrams.
	MinFillOpacity = 0.05
	// DefaultDutyBits matches the driver's 2048-step LED duty scale.
	DefaultDutyBits = 11
)

// FillOpacity maps intensity to the LED fill opacity used by the diagrams:
// 0.05 when dark, 1 at full brightness.
func FillOpacity(intensity float64) float64 {
	return MinFillOpacity + (1-MinFillOpacity)*core.Clamp01(intensity)
}

// Duty converts intensity to a PWM compare value with the given
// resolution in bits. Like the driver, resolutions of 31 bits or more use
// 0xFFFFFFFF as full scale; bits <= 0 yields 0.
func Duty(intensity float64, bits int) uint32 {
	if bits <= 0 {
		return 0
	}
	maxDuty := uint64(0xFFFFFFFF)
	if bits < 31 {
		maxDuty = (uint64(1) << uint(bits)) - 1
	}
	return uint32(core.Clamp01(intensity) * float64(maxDuty))
}
