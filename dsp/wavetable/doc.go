// Package wavetable holds immutable single-cycle envelope tables.
//
// A [Table] stores one full period of a quantized periodic envelope, for
// example an LED PWM duty-cycle curve sampled at N equal angular steps.
// Integer lookups wrap with floor-style modulo, so any index (including
// negative ones) maps into [0, N).
//
// [Sine256] returns the 256-entry LED sine table that the PWM driver
// steps through at 1 kHz. [Analyze] reports level and harmonic statistics
// for a table.
package wavetable
