// Command ledphase prints the LED phase model frame by frame.
//
// Usage:
//
//	ledphase [flags]
//
// By default it prints one row per frame of the "scroll" scene: playback
// time, phase and the intensity of every LED.
//
// Examples:
//
//	ledphase -list
//	ledphase -scene idle-unindexed -fps 10
//	ledphase -scene scroll -time-scale 20 -bars
//	ledphase -schedules off,0,128,max -dir reverse
//	ledphase -curve -phase 64 -scene default-sine
//	ledphase -analyze -table raised:128:1024
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/cwbudde/algo-ledwave/dsp/core"
	"github.com/cwbudde/algo-ledwave/dsp/interp"
	"github.com/cwbudde/algo-ledwave/dsp/phase"
	"github.com/cwbudde/algo-ledwave/dsp/sampler"
	"github.com/cwbudde/algo-ledwave/dsp/schedule"
	"github.com/cwbudde/algo-ledwave/dsp/signal"
	"github.com/cwbudde/algo-ledwave/dsp/wavetable"
)

const (
	defaultBarWidth = 16
	minBarWidth     = 4
	maxBarWidth     = 40
)

type options struct {
	list      bool
	scene     string
	schedules string
	dir       string
	table     string
	mode      string
	frames    int
	fps       float64
	tickRate  float64
	timeScale float64
	curve     bool
	phase     float64
	analyze   bool
	harmonics int
	dutyBits  int
	bars      bool
	barWidth  int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ledphase", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.BoolVar(&o.list, "list", false, "list available scenes")
	fs.StringVar(&o.scene, "scene", "scroll", "preset scene name")
	fs.StringVar(&o.schedules, "schedules", "", "comma separated channel schedules (off, max or an offset); overrides -scene")
	fs.StringVar(&o.dir, "dir", "forward", "scroll direction for -schedules (forward, reverse)")
	fs.StringVar(&o.table, "table", "sine256", "waveform table: sine256 or raised:N:PEAK")
	fs.StringVar(&o.mode, "interp", "linear", "interpolation mode (linear, hermite)")
	fs.IntVar(&o.frames, "frames", 0, "limit the number of printed frames (0 = whole sweep)")
	fs.Float64Var(&o.fps, "fps", 30, "frame rate in frames per second")
	fs.Float64Var(&o.tickRate, "tick-rate", 1000, "firmware tick rate in Hz")
	fs.Float64Var(&o.timeScale, "time-scale", 1, "playback slow-down factor")
	fs.BoolVar(&o.curve, "curve", false, "print full shifted curves at -phase instead of frames")
	fs.Float64Var(&o.phase, "phase", 0, "phase used by -curve, in table steps")
	fs.BoolVar(&o.analyze, "analyze", false, "print statistics and harmonics of the table")
	fs.IntVar(&o.harmonics, "harmonics", wavetable.DefaultHarmonics, "number of harmonics printed by -analyze")
	fs.IntVar(&o.dutyBits, "duty-bits", 0, "print PWM duty counts at this resolution instead of intensities")
	fs.BoolVar(&o.bars, "bars", false, "render intensities as bars")
	fs.IntVar(&o.barWidth, "bar-width", 0, "bar width in cells (0 = fit terminal)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ledphase [flags]\n\n")
		fmt.Fprintf(stderr, "Prints per-frame LED intensities of the sine-table PWM model.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  ledphase -list\n")
		fmt.Fprintf(stderr, "  ledphase -scene scroll -time-scale 20 -bars\n")
		fmt.Fprintf(stderr, "  ledphase -schedules off,0,128,max -dir reverse\n")
		fmt.Fprintf(stderr, "  ledphase -curve -phase 64 -scene default-sine\n")
		fmt.Fprintf(stderr, "  ledphase -analyze\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := execute(o, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func execute(o options, w io.Writer) error {
	if o.list {
		return printList(w)
	}

	table, err := parseTable(o.table)
	if err != nil {
		return err
	}
	if o.analyze {
		return printAnalysis(w, table, o.harmonics)
	}

	mode, err := interp.ParseMode(o.mode)
	if err != nil {
		return err
	}
	s, err := sampler.New(table, sampler.WithMode(mode))
	if err != nil {
		return err
	}
	model, err := phase.NewModel(s)
	if err != nil {
		return err
	}
	scene, err := buildScene(o)
	if err != nil {
		return err
	}

	if o.curve {
		if !core.IsFinite(o.phase) {
			return fmt.Errorf("phase must be finite: %f", o.phase)
		}
		return printCurves(w, model, scene, o.phase)
	}

	if o.fps <= 0 {
		return fmt.Errorf("fps must be > 0: %f", o.fps)
	}
	if o.tickRate <= 0 {
		return fmt.Errorf("tick rate must be > 0: %f", o.tickRate)
	}
	if o.timeScale <= 0 {
		return fmt.Errorf("time scale must be > 0: %f", o.timeScale)
	}
	if o.dutyBits < 0 || o.dutyBits > 32 {
		return fmt.Errorf("duty bits must be in [0, 32]: %d", o.dutyBits)
	}
	tl, err := phase.NewTimeline(model.Len(),
		core.WithTickRate(o.tickRate),
		core.WithTimeScale(o.timeScale),
		core.WithFrameRate(o.fps),
	)
	if err != nil {
		return err
	}

	width := 0
	if o.bars {
		width = barWidth(o.barWidth, len(scene.Channels()))
	}
	return printFrames(w, model, scene, tl, frameOptions{
		limit:    o.frames,
		barWidth: width,
		dutyBits: o.dutyBits,
	})
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Scene\tDirection\tAnimated\tChannels\tTitle\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, name := range phase.PresetNames() {
		sc, _ := phase.LookupPreset(name)
		scheds := make([]string, 0, len(sc.Channels()))
		for _, ch := range sc.Channels() {
			scheds = append(scheds, ch.Schedule().String())
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n",
			sc.Name, sc.Direction, sc.Animated, strings.Join(scheds, ","), sc.Title); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// parseTable accepts "sine256" or "raised:N:PEAK".
func parseTable(text string) (*wavetable.Table, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || text == "sine256" {
		return wavetable.Sine256(), nil
	}

	parts := strings.Split(text, ":")
	if len(parts) != 3 || parts[0] != "raised" {
		return nil, fmt.Errorf("unknown table %q (use sine256 or raised:N:PEAK)", text)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("table length %q: %w", parts[1], err)
	}
	peak, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("table peak %q: %w", parts[2], err)
	}
	values, err := signal.QuantizedRaisedSine(n, peak)
	if err != nil {
		return nil, err
	}
	return wavetable.New(values)
}

func buildScene(o options) (phase.Scene, error) {
	if o.schedules == "" {
		sc, ok := phase.LookupPreset(strings.ToLower(strings.TrimSpace(o.scene)))
		if !ok {
			return phase.Scene{}, fmt.Errorf("unknown scene %q (use -list to see available)", o.scene)
		}
		return sc, nil
	}

	dir, err := sampler.ParseDirection(o.dir)
	if err != nil {
		return phase.Scene{}, err
	}
	scheds, err := schedule.ParseList(o.schedules)
	if err != nil {
		return phase.Scene{}, err
	}
	channels := make([]phase.Channel, len(scheds))
	for i, s := range scheds {
		ch, err := phase.NewChannel(fmt.Sprintf("LED%d", i), s)
		if err != nil {
			return phase.Scene{}, err
		}
		channels[i] = ch
	}
	return phase.NewScene("custom", "Custom schedules", dir, true, channels...)
}

// barWidth picks a per-channel bar width. Without an explicit width the
// terminal is split evenly between channels, leaving room for the
// leading columns.
func barWidth(requested, channels int) int {
	if requested > 0 {
		return requested
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultBarWidth
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || channels == 0 {
		return defaultBarWidth
	}
	width := (cols-24)/channels - 8
	return min(max(width, minBarWidth), maxBarWidth)
}
