// Package sampler reads a [wavetable.Table] at fractional positions.
//
// Positions are in table-index units. The integer part selects a sample
// (wrapped modulo the table length) and the fractional part blends toward
// the next one, so reads are continuous across the cycle boundary and
// periodic with the table length.
//
// [Sampler.ShiftedCurve] renders a full cycle shifted by an offset and an
// animation phase. The [Direction] decides whether increasing phase scrolls
// the curve forward (index decreases) or in reverse (index increases).
package sampler
