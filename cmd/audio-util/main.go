// Command audio-util applies a biquad filter to a PCM WAV file.
//
// Usage:
//
//	audio-util -input IN.wav -output OUT.wav -filter hpf|lpf|peq -freq HZ [flags]
//
// Examples:
//
//	audio-util -input in.wav -output out.wav -filter hpf -freq 100
//	audio-util -input in.wav -output out.wav -filter lpf -freq 5000 -bits 24
//	audio-util -input in.wav -output out.wav -filter peq -freq 1000 -gain 6 -q 2 -report
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/audio-util/audio/wavio"
	"github.com/cwbudde/audio-util/dsp/buffer"
	"github.com/cwbudde/audio-util/dsp/filter/biquad"
	"github.com/cwbudde/audio-util/dsp/filter/stereo"
	"github.com/cwbudde/audio-util/measure/level"
	"github.com/cwbudde/audio-util/measure/tone"
)

var version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
)

type config struct {
	input    string
	output   string
	filter   string
	freq     float64
	gain     float64
	q        float64
	kernel   string
	bits     int
	report   bool
	logLevel string
	version  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	if cfg.version {
		fmt.Fprintf(stdout, "audio-util %s\n", version)
		return exitOK
	}

	log, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	if err := cfg.validate(); err != nil {
		log.WithError(err).Error("invalid arguments")
		return exitFailure
	}

	if err := process(cfg, log); err != nil {
		log.WithError(err).Error("processing failed")
		return exitFailure
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("audio-util", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "input", "", "input WAV file")
	fs.StringVar(&cfg.output, "output", "", "output WAV file")
	fs.StringVar(&cfg.filter, "filter", "", "filter type: hpf, lpf or peq")
	fs.Float64Var(&cfg.freq, "freq", 0, "cutoff or center frequency in Hz")
	fs.Float64Var(&cfg.gain, "gain", 0, "peq gain in dB")
	fs.Float64Var(&cfg.q, "q", 1.0, "peq quality factor")
	fs.StringVar(&cfg.kernel, "kernel", biquad.ScalarKernelName,
		"processing kernel: "+strings.Join(biquad.KernelNames(), ", "))
	fs.IntVar(&cfg.bits, "bits", 0, "output bit depth (8, 16, 24, 32); 0 keeps the input depth")
	fs.BoolVar(&cfg.report, "report", false, "log signal levels before and after filtering")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: audio-util -input IN.wav -output OUT.wav -filter hpf|lpf|peq -freq HZ [flags]\n\n")
		fmt.Fprintf(stderr, "Applies a biquad filter to a PCM WAV file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  audio-util -input in.wav -output out.wav -filter hpf -freq 100\n")
		fmt.Fprintf(stderr, "  audio-util -input in.wav -output out.wav -filter peq -freq 1000 -gain 6 -q 2\n")
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return cfg, nil
}

func newLogger(levelName string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid -log-level: %w", err)
	}

	// wavio logs through the standard logger.
	log := logrus.StandardLogger()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return log, nil
}

func (c config) validate() error {
	if c.input == "" {
		return errors.New("-input is required")
	}
	if c.output == "" {
		return errors.New("-output is required")
	}
	if c.filter == "" {
		return errors.New("-filter is required")
	}

	kind, err := stereo.ParseKind(c.filter)
	if err != nil {
		return err
	}

	if !(c.freq > 0) {
		return fmt.Errorf("-freq must be positive, got %v", c.freq)
	}
	if kind == stereo.KindPeak && !(c.q > 0) {
		return fmt.Errorf("-q must be positive, got %v", c.q)
	}
	if c.bits != 0 && !wavio.SupportedBitDepth(c.bits) {
		return fmt.Errorf("-bits must be 8, 16, 24 or 32, got %d", c.bits)
	}
	if _, err := biquad.KernelByName(c.kernel); err != nil {
		return err
	}

	if _, err := os.Stat(c.input); err != nil {
		return fmt.Errorf("%w: %s", wavio.ErrFileNotFound, c.input)
	}

	return nil
}

func (c config) params() stereo.Params {
	kind, _ := stereo.ParseKind(c.filter)
	return stereo.Params{Kind: kind, Frequency: c.freq, GainDB: c.gain, Q: c.q}
}

func process(cfg config, log *logrus.Logger) error {
	buf, format, err := wavio.Read(cfg.input)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"input":       cfg.input,
		"sample_rate": format.SampleRate,
		"channels":    format.Channels,
		"bit_depth":   format.BitDepth,
		"duration":    buf.Duration(),
	}).Info("loaded input")

	kernel, err := biquad.KernelByName(cfg.kernel)
	if err != nil {
		return err
	}

	p := cfg.params()
	f, err := stereo.New(float64(format.SampleRate), p, stereo.WithKernel(kernel))
	if err != nil {
		return fmt.Errorf("filter %s at %v Hz: %w", p.Kind, p.Frequency, err)
	}

	fields := logrus.Fields{
		"filter": p.Kind.String(),
		"freq":   p.Frequency,
		"kernel": kernel.Name(),
	}
	if p.Kind == stereo.KindPeak {
		fields["gain_db"] = p.GainDB
		fields["q"] = p.Q
	}
	log.WithFields(fields).Info("applying filter")

	var before *buffer.Buffer
	if cfg.report {
		before = buf.Copy()
	}

	f.ProcessBuffer(buf)

	if cfg.report {
		report(log, before, buf, p.Frequency)
	}

	bits := cfg.bits
	if bits == 0 {
		bits = format.BitDepth
	}

	if err := wavio.Write(cfg.output, buf, bits); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"output":    cfg.output,
		"bit_depth": bits,
		"frames":    buf.Frames(),
	}).Info("wrote output")

	return nil
}

// report logs per-channel broadband levels and the level at the filter
// frequency before and after processing.
func report(log *logrus.Logger, before, after *buffer.Buffer, freq float64) {
	sr := float64(after.SampleRate())

	for ch := 0; ch < after.Channels(); ch++ {
		in := before.Channel(ch)
		out := after.Channel(ch)

		sIn, sOut := level.Calculate(in), level.Calculate(out)
		fields := logrus.Fields{
			"channel":     ch,
			"rms_in_db":   fmt.Sprintf("%.2f", sIn.RMS_dB),
			"rms_out_db":  fmt.Sprintf("%.2f", sOut.RMS_dB),
			"peak_in_db":  fmt.Sprintf("%.2f", sIn.Peak_dB),
			"peak_out_db": fmt.Sprintf("%.2f", sOut.Peak_dB),
			"rms_gain_db": fmt.Sprintf("%.2f", level.GainDB(in, out)),
		}

		toneIn, errIn := tone.LevelDB(in, freq, sr)
		toneOut, errOut := tone.LevelDB(out, freq, sr)
		if errIn == nil && errOut == nil {
			fields["tone_gain_db"] = fmt.Sprintf("%.2f", toneOut-toneIn)
		}

		log.WithFields(fields).Info("level report")
	}
}
