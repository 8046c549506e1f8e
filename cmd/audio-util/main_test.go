package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/audio-util/audio/wavio"
	"github.com/cwbudde/audio-util/dsp/buffer"
	"github.com/cwbudde/audio-util/internal/testutil"
	"github.com/cwbudde/audio-util/measure/level"
)

const testSampleRate = 44100

func writeStereoTone(t *testing.T, freq float64, bits int) string {
	t.Helper()

	left := testutil.DeterministicSine(freq, testSampleRate, 0.5, testSampleRate/2)
	right := testutil.DeterministicSine(freq, testSampleRate, 0.25, testSampleRate/2)
	b := buffer.FromInterleaved(testutil.Interleave(left, right), 2, testSampleRate)

	path := filepath.Join(t.TempDir(), "in.wav")
	require.NoError(t, wavio.Write(path, b, bits))

	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI("-version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "audio-util")
}

func TestHelp(t *testing.T) {
	code, _, stderr := runCLI("-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "Usage: audio-util")
	assert.Contains(t, stderr, "-filter")
}

func TestInvalidArguments(t *testing.T) {
	in := writeStereoTone(t, 440, 16)
	out := filepath.Join(t.TempDir(), "out.wav")

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"missing output", []string{"-input", in, "-filter", "hpf", "-freq", "100"}},
		{"missing filter", []string{"-input", in, "-output", out, "-freq", "100"}},
		{"unknown filter", []string{"-input", in, "-output", out, "-filter", "bpf", "-freq", "100"}},
		{"zero freq", []string{"-input", in, "-output", out, "-filter", "lpf"}},
		{"negative freq", []string{"-input", in, "-output", out, "-filter", "lpf", "-freq", "-5"}},
		{"zero q", []string{"-input", in, "-output", out, "-filter", "peq", "-freq", "1000", "-q", "0"}},
		{"bad bits", []string{"-input", in, "-output", out, "-filter", "hpf", "-freq", "100", "-bits", "12"}},
		{"bad kernel", []string{"-input", in, "-output", out, "-filter", "hpf", "-freq", "100", "-kernel", "gpu"}},
		{"bad log level", []string{"-input", in, "-output", out, "-filter", "hpf", "-freq", "100", "-log-level", "loud"}},
		{"unknown flag", []string{"-input", in, "-output", out, "-filter", "hpf", "-freq", "100", "-order", "4"}},
		{"positional", []string{"-input", in, "-output", out, "-filter", "hpf", "-freq", "100", "extra"}},
		{"missing input", []string{"-input", filepath.Join(t.TempDir(), "none.wav"), "-output", out, "-filter", "hpf", "-freq", "100"}},
		{"above nyquist", []string{"-input", in, "-output", out, "-filter", "lpf", "-freq", "22050"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(tt.args...)
			assert.Equal(t, exitFailure, code)

			_, err := os.Stat(out)
			assert.True(t, os.IsNotExist(err), "output must not be written")
		})
	}
}

func TestHighpassAttenuatesLowTone(t *testing.T) {
	in := writeStereoTone(t, 50, 16)
	out := filepath.Join(t.TempDir(), "out.wav")

	code, _, stderr := runCLI("-input", in, "-output", out, "-filter", "hpf", "-freq", "1000")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stderr, "wrote output")

	before, _, err := wavio.Read(in)
	require.NoError(t, err)
	after, format, err := wavio.Read(out)
	require.NoError(t, err)

	assert.Equal(t, testSampleRate, format.SampleRate)
	assert.Equal(t, 2, format.Channels)
	assert.Equal(t, 16, format.BitDepth)
	assert.Equal(t, before.Frames(), after.Frames())

	for ch := 0; ch < 2; ch++ {
		rmsIn := level.RMS(before.Channel(ch))
		rmsOut := level.RMS(after.Channel(ch))
		assert.Less(t, rmsOut, 0.05*rmsIn, "channel %d", ch)
	}
}

func TestLowpassPassesLowTone(t *testing.T) {
	in := writeStereoTone(t, 100, 24)
	out := filepath.Join(t.TempDir(), "out.wav")

	code, _, stderr := runCLI("-input", in, "-output", out, "-filter", "lpf", "-freq", "5000", "-kernel", "accelerated")
	require.Equal(t, exitOK, code, stderr)

	before, _, err := wavio.Read(in)
	require.NoError(t, err)
	after, format, err := wavio.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 24, format.BitDepth)

	gain := level.GainDB(before.Channel(0), after.Channel(0))
	assert.InDelta(t, 0, gain, 0.1)
}

func TestPeakReportAndBitDepthOverride(t *testing.T) {
	in := writeStereoTone(t, 1000, 24)
	out := filepath.Join(t.TempDir(), "out.wav")

	code, _, stderr := runCLI(
		"-input", in, "-output", out,
		"-filter", "peq", "-freq", "1000", "-gain", "-6", "-q", "2",
		"-bits", "16", "-report",
	)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stderr, "level report")
	assert.Contains(t, stderr, "tone_gain_db")

	before, _, err := wavio.Read(in)
	require.NoError(t, err)
	after, format, err := wavio.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 16, format.BitDepth)

	gain := level.GainDB(before.Channel(0), after.Channel(0))
	assert.InDelta(t, -6, gain, 0.2)
}
