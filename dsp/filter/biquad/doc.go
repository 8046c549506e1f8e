// Package biquad provides the second-order recursive filter unit used by the
// high-pass, low-pass and parametric EQ filters.
//
// A [Unit] evaluates the direct-form I recurrence
//
//	y[n] = A0*x[n] + A1*x[n-1] + A2*x[n-2] - B1*y[n-1] - B2*y[n-2]
//
// for one channel lane, suppresses outputs in the single-precision denormal
// range, and carries a wet/dry mix pair (C0, D0) that callers apply on top of
// the raw output.
//
// Block processing goes through a [Kernel]. [ScalarKernel] is the reference
// implementation; [AcceleratedKernel] picks the best unrolled kernel for the
// running CPU. Every kernel produces the same samples and leaves the unit in
// the same state as the reference.
//
// Coefficient design lives in dsp/filter/design.
package biquad
