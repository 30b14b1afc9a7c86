package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestList(t *testing.T) {
	code, out, _ := runCmd(t, "-list")
	require.Equal(t, 0, code)
	for _, name := range []string{"idle-indexed", "idle-unindexed", "default-sine", "scroll", "scroll-reverse", "static", "feed-backward"} {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "off,off,off,max")
}

func TestFramesLimit(t *testing.T) {
	code, out, stderr := runCmd(t, "-frames", "3")
	require.Equal(t, 0, code, stderr)
	rows := lines(out)
	require.Len(t, rows, 4)
	require.Contains(t, rows[0], "LED1 (t + 55)")

	first := strings.Fields(rows[1])
	require.Equal(t, []string{"0", "0.000", "0.00", "1.000"}, first[:4])
}

func TestFramesWholeSweep(t *testing.T) {
	code, out, _ := runCmd(t, "-scene", "idle-unindexed", "-fps", "30")
	require.Equal(t, 0, code)
	rows := lines(out)
	// 0.256 s at 30 fps: 9 frames plus the header.
	require.Len(t, rows, 10)
	last := strings.Fields(rows[len(rows)-1])
	require.Equal(t, "256.00", last[2])
}

func TestCustomSchedules(t *testing.T) {
	code, out, stderr := runCmd(t, "-schedules", "off,max", "-dir", "reverse", "-frames", "1")
	require.Equal(t, 0, code, stderr)
	rows := lines(out)
	require.Contains(t, rows[0], "LED0 (off)")
	require.Contains(t, rows[0], "LED1 (max)")
	require.Equal(t, []string{"0", "0.000", "0.00", "0.000", "1.000"}, strings.Fields(rows[1]))
}

func TestDutyAndBars(t *testing.T) {
	code, out, _ := runCmd(t, "-schedules", "off,max", "-frames", "1", "-duty-bits", "11", "-bars", "-bar-width", "4")
	require.Equal(t, 0, code)
	row := strings.Fields(lines(out)[1])
	require.Equal(t, []string{"....", "0", "####", "2047"}, row[3:])
}

func TestCurve(t *testing.T) {
	code, out, _ := runCmd(t, "-curve", "-schedules", "max,off")
	require.Equal(t, 0, code)
	rows := lines(out)
	require.Len(t, rows, 257)
	require.Equal(t, []string{"17", "256.00", "0.00"}, strings.Fields(rows[18]))
}

func TestCurveHermiteMatchesAtIntegerPhase(t *testing.T) {
	_, lin, _ := runCmd(t, "-curve", "-scene", "scroll", "-phase", "12")
	_, her, _ := runCmd(t, "-curve", "-scene", "scroll", "-phase", "12", "-interp", "hermite")
	require.Equal(t, lin, her)
}

func TestAnalyze(t *testing.T) {
	code, out, _ := runCmd(t, "-analyze", "-harmonics", "3")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Peak")
	require.Contains(t, out, "256")
	require.Contains(t, out, "Harmonic")

	code, out, _ = runCmd(t, "-analyze", "-table", "raised:64:1000")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Length")
	require.Contains(t, out, "64")
}

func TestErrors(t *testing.T) {
	cases := [][]string{
		{"-scene", "nope"},
		{"-table", "raised:0:10"},
		{"-table", "square"},
		{"-fps", "0"},
		{"-time-scale", "-1"},
		{"-schedules", "off,bogus"},
		{"-dir", "sideways", "-schedules", "0"},
		{"-interp", "sinc"},
		{"-duty-bits", "40"},
		{"-curve", "-phase", "NaN"},
		{"-curve", "-phase", "-Inf"},
	}
	for _, args := range cases {
		code, _, stderr := runCmd(t, args...)
		require.Equalf(t, 1, code, "%v", args)
		require.Truef(t, strings.HasPrefix(stderr, "error: "), "%v: %q", args, stderr)
	}

	code, _, _ := runCmd(t, "-no-such-flag")
	require.Equal(t, 2, code)
}

func TestParseTable(t *testing.T) {
	tbl, err := parseTable("raised:4:20")
	require.NoError(t, err)
	require.Equal(t, []int{10, 20, 10, 0}, tbl.Values())

	tbl, err = parseTable("")
	require.NoError(t, err)
	require.Equal(t, 256, tbl.Len())

	_, err = parseTable("raised:x:20")
	require.Error(t, err)
	_, err = parseTable("raised:4:y")
	require.Error(t, err)
}

func TestBar(t *testing.T) {
	require.Equal(t, "##..", bar(0.5, 4))
	require.Equal(t, "####", bar(1.2, 4))
	require.Equal(t, "....", bar(-1, 4))
	require.Equal(t, 7, barWidth(7, 4))
}
