// Package webdemo drives the LED phase model for the browser demo.
//
// A Player owns the animation phase, advances it from wall-clock deltas
// and hands out one frame per render tick. It is not safe for concurrent
// use; the WASM entry point calls it from the JavaScript event loop only.
package webdemo
