package stereo

import (
	"errors"
	"fmt"

	"github.com/cwbudde/audio-util/dsp/filter/biquad"
	"github.com/cwbudde/audio-util/dsp/filter/design"
)

// Kind selects the filter shape.
type Kind int

const (
	KindHighpass Kind = iota
	KindLowpass
	KindPeak
)

// ErrUnknownKind is returned for a filter name or Kind value with no design.
var ErrUnknownKind = errors.New("stereo: unknown filter kind")

// String returns the short command line name: hpf, lpf or peq.
func (k Kind) String() string {
	switch k {
	case KindHighpass:
		return "hpf"
	case KindLowpass:
		return "lpf"
	case KindPeak:
		return "peq"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps hpf, lpf or peq to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "hpf":
		return KindHighpass, nil
	case "lpf":
		return KindLowpass, nil
	case "peq":
		return KindPeak, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Params are the musical parameters of a filter. GainDB and Q are only used
// by KindPeak.
type Params struct {
	Kind      Kind
	Frequency float64 // cutoff or center, Hz
	GainDB    float64
	Q         float64
}

// Validate reports whether p can be designed at sampleRate.
func (p Params) Validate(sampleRate float64) error {
	switch p.Kind {
	case KindHighpass, KindLowpass:
		return design.CheckFrequency(p.Frequency, sampleRate)
	case KindPeak:
		if err := design.CheckFrequency(p.Frequency, sampleRate); err != nil {
			return err
		}
		if err := design.CheckQ(p.Q); err != nil {
			return err
		}
		return design.CheckGain(p.GainDB)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
	}
}

// Design runs the designer for p without validating it.
func (p Params) Design(sampleRate float64) biquad.Coefficients {
	switch p.Kind {
	case KindHighpass:
		return design.ButterworthHighpass(p.Frequency, sampleRate)
	case KindLowpass:
		return design.ButterworthLowpass(p.Frequency, sampleRate)
	case KindPeak:
		return design.ConstantQPeak(p.Frequency, p.GainDB, p.Q, sampleRate)
	default:
		return biquad.DefaultCoefficients()
	}
}
