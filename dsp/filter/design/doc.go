// Package design computes biquad coefficients for the three filter shapes
// the audio-util engine supports: second-order Butterworth high-pass and
// low-pass, and a constant-Q parametric peaking EQ.
//
// The designers are pure functions of their arguments. They do not validate
// their inputs: a cutoff at or above Nyquist makes tan(pi*f/fs) diverge and
// yields non-finite coefficients. Callers that accept user input run
// [CheckFrequency] and [CheckQ] first; dsp/filter/stereo does so in every
// constructor.
package design
