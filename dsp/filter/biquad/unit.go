package biquad

import (
	archregistry "github.com/cwbudde/audio-util/dsp/filter/biquad/internal/arch/registry"
)

// UnderflowThreshold is the smallest positive normal float32 (FLT_MIN).
// Outputs with a smaller non-zero magnitude are flushed to exactly zero.
const UnderflowThreshold = archregistry.UnderflowThreshold

// Coefficients holds the recurrence and mix coefficients of one unit.
//
// A0..A2 weight the current and two previous inputs, B1 and B2 weight the
// two previous outputs (subtracted). C0 scales the filtered (wet) signal and
// D0 the unfiltered (dry) input.
type Coefficients struct {
	A0, A1, A2 float64 // feedforward
	B1, B2     float64 // feedback
	C0, D0     float64 // wet, dry
}

// DefaultCoefficients returns the reset coefficient set: a silent recurrence
// with a fully wet mix.
func DefaultCoefficients() Coefficients {
	return Coefficients{C0: 1}
}

// State is the delay line of a unit, most recent sample first.
type State struct {
	XZ1, XZ2 float64 // x[n-1], x[n-2]
	YZ1, YZ2 float64 // y[n-1], y[n-2] before mixing
}

// Unit is one biquad lane: coefficients plus delay state.
//
// A Unit is owned by a single writer. Calls that advance its state must not
// run concurrently.
type Unit struct {
	Coefficients

	state State
}

// NewUnit returns a Unit with the given coefficients and cleared delays.
func NewUnit(c Coefficients) *Unit {
	return &Unit{Coefficients: c}
}

// Init resets the unit to DefaultCoefficients and clears its delays.
func (u *Unit) Init() {
	u.Coefficients = DefaultCoefficients()
	u.FlushDelays()
}

// FlushDelays zeroes the delay line and leaves the coefficients untouched.
func (u *Unit) FlushDelays() {
	u.state = State{}
}

// Configure installs new coefficients and clears the delay line.
func (u *Unit) Configure(c Coefficients) {
	u.Coefficients = c
	u.FlushDelays()
}

// ProcessSample runs one input sample through the recurrence and returns the
// raw (pre-mix) output.
func (u *Unit) ProcessSample(x float64) float64 {
	y := u.A0*x + u.A1*u.state.XZ1 + u.A2*u.state.XZ2 - u.B1*u.state.YZ1 - u.B2*u.state.YZ2
	y = archregistry.FlushUnderflow(y)

	u.state.YZ2 = u.state.YZ1
	u.state.YZ1 = y
	u.state.XZ2 = u.state.XZ1
	u.state.XZ1 = x

	return y
}

// Mix combines a raw output with the input it was computed from:
// wet*C0 + in*D0.
func (u *Unit) Mix(in, wet float64) float64 {
	return wet*u.C0 + in*u.D0
}

// ProcessBlock filters buf in place, writing mixed output. It uses the
// accelerated kernel for the running CPU.
func (u *Unit) ProcessBlock(buf []float64) {
	AcceleratedKernel().ProcessBlock(u, buf)
}

// ProcessBlockWith filters buf in place using k.
func (u *Unit) ProcessBlockWith(k Kernel, buf []float64) {
	k.ProcessBlock(u, buf)
}

// State returns the current delay line.
func (u *Unit) State() State {
	return u.state
}

// SetState restores a previously saved delay line.
func (u *Unit) SetState(s State) {
	u.state = s
}

func (u *Unit) archCoefficients() archregistry.Coefficients {
	return archregistry.Coefficients{
		A0: u.A0, A1: u.A1, A2: u.A2,
		B1: u.B1, B2: u.B2,
		C0: u.C0, D0: u.D0,
	}
}

func (u *Unit) archState() archregistry.State {
	return archregistry.State(u.state)
}
