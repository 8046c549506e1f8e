package buffer

import (
	"time"

	"github.com/cwbudde/audio-util/dsp/core"
)

// Buffer is an interleaved multi-channel sample block.
type Buffer struct {
	samples    []float64
	channels   int
	sampleRate int
}

// New returns a zero-filled Buffer holding frames frames of channels
// interleaved samples. Channel counts below 1 are raised to 1.
func New(frames, channels, sampleRate int) *Buffer {
	if frames < 0 {
		frames = 0
	}
	if channels < 1 {
		channels = 1
	}
	return &Buffer{
		samples:    make([]float64, frames*channels),
		channels:   channels,
		sampleRate: sampleRate,
	}
}

// FromInterleaved wraps an existing interleaved slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
// The slice length need not be a whole number of frames.
func FromInterleaved(samples []float64, channels, sampleRate int) *Buffer {
	return &Buffer{samples: samples, channels: channels, sampleRate: sampleRate}
}

// Samples returns the underlying interleaved slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the total number of samples across all channels.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Channels returns the interleave factor.
func (b *Buffer) Channels() int {
	return b.channels
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

// Frames returns the number of complete frames. A trailing partial frame is
// not counted.
func (b *Buffer) Frames() int {
	if b.channels < 1 {
		return 0
	}
	return len(b.samples) / b.channels
}

// Duration returns the playback length of the complete frames.
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.sampleRate)
}

// Channel returns a copy of channel ch, one value per complete frame.
// It returns nil for an out-of-range channel.
func (b *Buffer) Channel(ch int) []float64 {
	if ch < 0 || ch >= b.channels {
		return nil
	}

	frames := b.Frames()
	out := make([]float64, frames)
	for f := range out {
		out[f] = b.samples[f*b.channels+ch]
	}
	return out
}

// SetChannel overwrites channel ch with src, frame by frame, and returns the
// number of frames written.
func (b *Buffer) SetChannel(ch int, src []float64) int {
	if ch < 0 || ch >= b.channels {
		return 0
	}

	n := min(len(src), b.Frames())
	for f := 0; f < n; f++ {
		b.samples[f*b.channels+ch] = src[f]
	}
	return n
}

// Resize sets the length to n samples, reusing existing capacity when
// possible. New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// The backing array may hold stale data from earlier use.
	if n > oldLen {
		core.Zero(b.samples[oldLen:n])
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	core.Zero(b.samples)
}

// Copy returns a deep copy of the buffer with the same layout.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	core.CopyInto(s, b.samples)
	return &Buffer{samples: s, channels: b.channels, sampleRate: b.sampleRate}
}
