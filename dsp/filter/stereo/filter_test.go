package stereo

import (
	"errors"
	"testing"

	"github.com/cwbudde/audio-util/dsp/filter/biquad"
	"github.com/cwbudde/audio-util/dsp/filter/design"
)

func TestKindStringAndParse(t *testing.T) {
	for _, k := range []Kind{KindHighpass, KindLowpass, KindPeak} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}

	if _, err := ParseKind("notch"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(notch) error = %v", err)
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Fatalf("Kind(9).String() = %q", got)
	}
}

func TestConstructorsUseDesigners(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Filter, error)
		want biquad.Coefficients
	}{
		{"hpf", func() (*Filter, error) { return NewHighpass(44100, 100) }, design.ButterworthHighpass(100, 44100)},
		{"lpf", func() (*Filter, error) { return NewLowpass(44100, 5000) }, design.ButterworthLowpass(5000, 44100)},
		{"peq", func() (*Filter, error) { return NewPeak(48000, 1000, -6, 2) }, design.ConstantQPeak(1000, -6, 2, 48000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.make()
			if err != nil {
				t.Fatal(err)
			}
			for _, l := range []Lane{LaneLeft, LaneRight} {
				u := f.Lane(l)
				if u.Coefficients != tt.want {
					t.Fatalf("lane %d coefficients = %+v, want %+v", l, u.Coefficients, tt.want)
				}
				if u.State() != (biquad.State{}) {
					t.Fatalf("lane %d not flushed: %+v", l, u.State())
				}
			}
			if f.Coefficients() != tt.want {
				t.Fatalf("Coefficients() = %+v", f.Coefficients())
			}
			if f.Kernel().Name() != biquad.ScalarKernelName {
				t.Fatalf("default kernel = %q", f.Kernel().Name())
			}
		})
	}
}

func TestNewRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		sr   float64
		p    Params
		want error
	}{
		{"nyquist", 44100, Params{Kind: KindHighpass, Frequency: 22050}, design.ErrAboveNyquist},
		{"above-nyquist", 44100, Params{Kind: KindLowpass, Frequency: 30000}, design.ErrAboveNyquist},
		{"zero-freq", 44100, Params{Kind: KindLowpass}, design.ErrInvalidFrequency},
		{"zero-rate", 0, Params{Kind: KindHighpass, Frequency: 100}, design.ErrInvalidSampleRate},
		{"zero-q", 44100, Params{Kind: KindPeak, Frequency: 1000, GainDB: 3}, design.ErrInvalidQ},
		{"unknown-kind", 44100, Params{Kind: Kind(7), Frequency: 1000}, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.sr, tt.p)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if f != nil {
				t.Fatal("New() returned a filter on error")
			}
		})
	}
}

func TestHighpassIgnoresPeakParams(t *testing.T) {
	if _, err := New(44100, Params{Kind: KindHighpass, Frequency: 100, Q: -1}); err != nil {
		t.Fatalf("Q must not be checked for hpf: %v", err)
	}
}

func TestUpdateCoefficientsFlushesState(t *testing.T) {
	f, err := NewPeak(44100, 1000, 6, 1)
	if err != nil {
		t.Fatal(err)
	}

	f.ProcessInterleaved([]float64{0.5, -0.5, 0.25, 0.1}, 2)
	if f.Lane(LaneLeft).State() == (biquad.State{}) {
		t.Fatal("processing did not advance state")
	}

	p := Params{Kind: KindLowpass, Frequency: 2000}
	if err := f.UpdateCoefficients(48000, p); err != nil {
		t.Fatal(err)
	}

	if f.Params() != p || f.SampleRate() != 48000 {
		t.Fatalf("Params() = %+v, SampleRate() = %v", f.Params(), f.SampleRate())
	}
	want := design.ButterworthLowpass(2000, 48000)
	for _, l := range []Lane{LaneLeft, LaneRight} {
		if f.Lane(l).Coefficients != want {
			t.Fatalf("lane %d not re-designed", l)
		}
		if f.Lane(l).State() != (biquad.State{}) {
			t.Fatalf("lane %d not flushed", l)
		}
	}
}

func TestUpdateCoefficientsInvalidLeavesFilterUnchanged(t *testing.T) {
	f, err := NewHighpass(44100, 100)
	if err != nil {
		t.Fatal(err)
	}
	f.ProcessInterleaved([]float64{0.5, -0.5}, 2)

	before := *f.Lane(LaneLeft)
	params := f.Params()

	err = f.UpdateCoefficients(44100, Params{Kind: KindHighpass, Frequency: 40000})
	if !errors.Is(err, design.ErrAboveNyquist) {
		t.Fatalf("UpdateCoefficients() error = %v", err)
	}

	if *f.Lane(LaneLeft) != before || f.Params() != params || f.SampleRate() != 44100 {
		t.Fatal("failed update modified the filter")
	}
}

func TestLaneSelection(t *testing.T) {
	f, err := NewLowpass(44100, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if f.Lane(LaneLeft) == f.Lane(LaneRight) {
		t.Fatal("lanes must be distinct units")
	}
	if f.Lane(Lane(5)) != f.Lane(LaneRight) || f.Lane(Lane(-1)) != f.Lane(LaneRight) {
		t.Fatal("any non-left lane value must select the right lane")
	}
}

func TestReset(t *testing.T) {
	f, err := NewLowpass(44100, 1000)
	if err != nil {
		t.Fatal(err)
	}
	f.ProcessInterleaved([]float64{1, 1, 1, 1}, 2)
	f.Reset()

	for _, l := range []Lane{LaneLeft, LaneRight} {
		if f.Lane(l).State() != (biquad.State{}) {
			t.Fatalf("lane %d not flushed", l)
		}
		if f.Lane(l).Coefficients != design.ButterworthLowpass(1000, 44100) {
			t.Fatalf("lane %d lost its design", l)
		}
	}
}

func TestWithKernelNilIgnored(t *testing.T) {
	f, err := NewLowpass(44100, 1000, WithKernel(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Kernel().Name() != biquad.ScalarKernelName {
		t.Fatalf("kernel = %q, want scalar", f.Kernel().Name())
	}

	f, err = NewLowpass(44100, 1000, WithKernel(biquad.AcceleratedKernel()))
	if err != nil {
		t.Fatal(err)
	}
	if f.Kernel().Name() != biquad.AcceleratedKernel().Name() {
		t.Fatalf("kernel = %q", f.Kernel().Name())
	}
}
