// Package schedule describes how one output channel's brightness depends
// on the animation phase.
//
// A [Schedule] is a closed set of three variants:
//
//   - [Disabled]:    the channel never lights.
//   - [FixedMax]:    the channel is constantly at full intensity.
//   - [PhaseOffset]: the channel follows the envelope table, shifted by a
//     fixed offset in table-index units relative to the phase.
//
// The interface is sealed; no other package can add variants, so a type
// switch over the three cases is exhaustive. Text forms ("off", "max", a
// number) are accepted by [Parse].
package schedule
