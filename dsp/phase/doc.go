// Package phase turns an animation phase into per-channel LED brightness
// and shifted envelope curves.
//
// A [Model] wraps a [sampler.Sampler] and a fixed reference index (by
// default one quarter of the table, the 90° point). For every
// [schedule.Schedule] it answers two queries:
//
//   - [Model.IntensityAt]: a normalized scalar in [0, 1] for LED fills.
//   - [Model.CurveFor]: one cycle of raw table values for line graphs.
//
// Phase is owned by the caller and passed in on every query; the model keeps
// no mutable state, so the same phase always yields the same result.
// [Timeline] maps wall-clock time to phase for a driver, and [Presets] lists
// the documented LED scenes.
package phase
