// Package level computes time-domain level statistics of a sampled
// envelope: mean, RMS, extremes with positions, variance and crest factor.
package level
