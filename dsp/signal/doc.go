// Package signal synthesizes single-cycle envelopes for wavetables.
package signal
