package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ledwave/dsp/phase"
	"github.com/cwbudde/algo-ledwave/dsp/wavetable"
)

type frameOptions struct {
	limit    int
	barWidth int
	dutyBits int
}

func printFrames(w io.Writer, m *phase.Model, sc phase.Scene, tl phase.Timeline, o frameOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	var header strings.Builder
	header.WriteString("Frame\tTime [s]\tPhase")
	for _, ch := range sc.Channels() {
		header.WriteString("\t")
		header.WriteString(ch.Label())
	}
	header.WriteString("\n")
	if _, err := io.WriteString(tw, header.String()); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	fps := tl.Config().FrameRate
	phases := tl.Frames()
	if o.limit > 0 && o.limit < len(phases) {
		phases = phases[:o.limit]
	}

	var f phase.Frame
	var row strings.Builder
	for i, ph := range phases {
		sc.FrameInto(&f, m, ph, false)

		row.Reset()
		fmt.Fprintf(&row, "%d\t%.3f\t%.2f", i, float64(i)/fps, f.Phase)
		for _, v := range f.Intensities {
			row.WriteString("\t")
			row.WriteString(formatCell(v, o))
		}
		row.WriteString("\n")
		if _, err := io.WriteString(tw, row.String()); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func formatCell(intensity float64, o frameOptions) string {
	var value string
	if o.dutyBits > 0 {
		value = fmt.Sprintf("%d", phase.Duty(intensity, o.dutyBits))
	} else {
		value = fmt.Sprintf("%.3f", intensity)
	}
	if o.barWidth <= 0 {
		return value
	}
	return bar(intensity, o.barWidth) + " " + value
}

// bar renders intensity in [0, 1] as a fixed-width bar.
func bar(intensity float64, width int) string {
	filled := int(intensity*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

func printCurves(w io.Writer, m *phase.Model, sc phase.Scene, ph float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	channels := sc.Channels()

	var header strings.Builder
	header.WriteString("Index")
	for _, ch := range channels {
		header.WriteString("\t")
		header.WriteString(ch.Label())
	}
	header.WriteString("\n")
	if _, err := io.WriteString(tw, header.String()); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	f := sc.Frame(m, ph, true)
	var row strings.Builder
	for i := 0; i < m.Len(); i++ {
		row.Reset()
		fmt.Fprintf(&row, "%d", i)
		for _, c := range f.Curves {
			fmt.Fprintf(&row, "\t%.2f", c[i])
		}
		row.WriteString("\n")
		if _, err := io.WriteString(tw, row.String()); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printAnalysis(w io.Writer, t *wavetable.Table, harmonics int) error {
	a, err := wavetable.Analyze(t, harmonics)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Length", fmt.Sprintf("%d", a.Len)},
		{"Min", fmt.Sprintf("%.0f", a.Min)},
		{"Peak", fmt.Sprintf("%.0f @ %d", a.Peak, a.PeakIndex)},
		{"Mean", fmt.Sprintf("%.3f", a.Mean)},
		{"RMS", fmt.Sprintf("%.3f", a.RMS)},
		{"Crest factor", fmt.Sprintf("%.3f", a.CrestFactor)},
		{"Duty", fmt.Sprintf("%.4f", a.Duty)},
		{"THD", fmt.Sprintf("%.4f%%", a.THD*100)},
		{"FFT size", fmt.Sprintf("%d", a.FFTSize)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "\nHarmonic\tAmplitude\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for k, amp := range a.Harmonics {
		if _, err := fmt.Fprintf(tw, "%d\t%.4f\n", k+1, amp); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
