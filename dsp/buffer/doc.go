// Package buffer provides the interleaved sample buffer the filter engine
// processes in place, plus a pool of mono scratch buffers for hot paths.
//
// Samples are normalized float64 values, ordered frame by frame:
// [ch0, ch1, ..., chN-1, ch0, ch1, ...]. A Buffer never changes its own
// channel count or sample rate; processors mutate sample values only.
package buffer
