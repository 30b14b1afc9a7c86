// Package interp provides interpolation primitives used by table readers.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// The [Mode] enum lets table readers select the
// interpolation algorithm at construction time.
package interp
