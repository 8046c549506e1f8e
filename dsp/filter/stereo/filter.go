package stereo

import (
	"github.com/cwbudde/audio-util/dsp/filter/biquad"
)

// Lane addresses one of the two biquad units of a Filter.
type Lane int

const (
	LaneLeft  Lane = 0
	LaneRight Lane = 1
)

// Filter is one designed filter shape applied through two lanes.
//
// A Filter is not safe for concurrent use; give each concurrently processed
// stream its own Filter.
type Filter struct {
	lanes      [2]biquad.Unit
	params     Params
	sampleRate float64
	kernel     biquad.Kernel
}

// New designs p at sampleRate for both lanes.
func New(sampleRate float64, p Params, opts ...Option) (*Filter, error) {
	if err := p.Validate(sampleRate); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	f := &Filter{kernel: cfg.kernel}
	f.configure(sampleRate, p)
	return f, nil
}

// NewHighpass returns a Butterworth high-pass at cutoff freq (Hz).
func NewHighpass(sampleRate, freq float64, opts ...Option) (*Filter, error) {
	return New(sampleRate, Params{Kind: KindHighpass, Frequency: freq}, opts...)
}

// NewLowpass returns a Butterworth low-pass at cutoff freq (Hz).
func NewLowpass(sampleRate, freq float64, opts ...Option) (*Filter, error) {
	return New(sampleRate, Params{Kind: KindLowpass, Frequency: freq}, opts...)
}

// NewPeak returns a constant-Q peaking EQ centered at freq (Hz).
func NewPeak(sampleRate, freq, gainDB, q float64, opts ...Option) (*Filter, error) {
	return New(sampleRate, Params{Kind: KindPeak, Frequency: freq, GainDB: gainDB, Q: q}, opts...)
}

// UpdateCoefficients re-designs both lanes for p at sampleRate. The delay
// lines are flushed, so the next sample starts from silence. On a
// validation error the filter is left unchanged.
func (f *Filter) UpdateCoefficients(sampleRate float64, p Params) error {
	if err := p.Validate(sampleRate); err != nil {
		return err
	}

	f.configure(sampleRate, p)
	return nil
}

func (f *Filter) configure(sampleRate float64, p Params) {
	c := p.Design(sampleRate)
	for i := range f.lanes {
		f.lanes[i].Configure(c)
	}
	f.params = p
	f.sampleRate = sampleRate
}

// Params returns the parameters of the current design.
func (f *Filter) Params() Params { return f.params }

// SampleRate returns the sample rate of the current design.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Kernel returns the block kernel used by the dispatcher.
func (f *Filter) Kernel() biquad.Kernel { return f.kernel }

// Coefficients returns the designed coefficients shared by both lanes.
func (f *Filter) Coefficients() biquad.Coefficients { return f.lanes[LaneLeft].Coefficients }

// Lane returns the unit behind l. LaneLeft selects lane 0; every other value
// selects lane 1.
func (f *Filter) Lane(l Lane) *biquad.Unit {
	return &f.lanes[laneIndex(l)]
}

// Reset flushes both delay lines and keeps the design.
func (f *Filter) Reset() {
	for i := range f.lanes {
		f.lanes[i].FlushDelays()
	}
}

func laneIndex(l Lane) int {
	if l == LaneLeft {
		return 0
	}
	return 1
}
