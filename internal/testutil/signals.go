package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Tone is one sine component of a MixedSine signal.
type Tone struct {
	FreqHz    float64
	Amplitude float64
}

// MixedSine sums deterministic sine tones sampled at sampleRate.
func MixedSine(sampleRate float64, length int, tones ...Tone) []float64 {
	out := make([]float64, length)
	for _, tone := range tones {
		step := 2 * math.Pi * tone.FreqHz / sampleRate
		for i := range out {
			out[i] += tone.Amplitude * math.Sin(step*float64(i))
		}
	}
	return out
}

// Interleave merges per-channel slices frame by frame. The result holds
// as many frames as the shortest channel.
func Interleave(channels ...[]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		frames = min(frames, len(ch))
	}

	out := make([]float64, frames*len(channels))
	for f := 0; f < frames; f++ {
		for c, ch := range channels {
			out[f*len(channels)+c] = ch[f]
		}
	}
	return out
}

// Deinterleave splits an interleaved slice into per-channel slices. A
// trailing partial frame is dropped.
func Deinterleave(data []float64, channels int) [][]float64 {
	if channels < 1 {
		return nil
	}

	frames := len(data) / channels
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, frames)
		for f := 0; f < frames; f++ {
			out[c][f] = data[f*channels+c]
		}
	}
	return out
}
