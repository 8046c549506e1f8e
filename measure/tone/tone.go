// Package tone estimates the amplitude of a single sinusoid inside a signal
// from a Hann-windowed FFT. audio-util uses it to report how strongly a
// filter passed or rejected a given frequency.
package tone

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/audio-util/dsp/core"
)

var (
	// ErrShortSignal is returned for signals with fewer than two samples.
	ErrShortSignal = errors.New("tone: signal too short")
	// ErrInvalidFrequency is returned for a tone frequency outside (0, Nyquist).
	ErrInvalidFrequency = errors.New("tone: frequency outside (0, Nyquist)")
)

// Level returns the estimated peak amplitude of the sinusoid at freqHz.
//
// The signal is Hann windowed and zero padded to the next power of two. The
// strongest bin within the window's main lobe around freqHz is refined by
// parabolic interpolation of its dB magnitude.
func Level(signal []float64, freqHz, sampleRate float64) (float64, error) {
	n := len(signal)
	if n < 2 {
		return 0, fmt.Errorf("%w: %d samples", ErrShortSignal, n)
	}

	if !(sampleRate > 0) || !(freqHz > 0) || freqHz >= sampleRate/2 {
		return 0, fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidFrequency, freqHz, sampleRate)
	}

	fftSize := nextPowerOf2(n)

	win := hann(n)
	windowed := make([]float64, n)
	vecmath.MulBlock(windowed, signal, win)

	in := make([]complex128, fftSize)
	for i, x := range windowed {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("tone: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("tone: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	center := int(math.Round(freqHz * float64(fftSize) / sampleRate))
	radius := int(math.Ceil(2*float64(fftSize)/float64(n))) + 1
	lo := max(1, center-radius)
	hi := min(bins-2, center+radius)

	peakBin := lo
	for k := lo; k <= hi; k++ {
		if mag[k] > mag[peakBin] {
			peakBin = k
		}
	}

	peak := interpolatePeak(mag, peakBin)

	return 2 * peak / vecmath.Sum(win), nil
}

// LevelDB is Level expressed in dBFS.
func LevelDB(signal []float64, freqHz, sampleRate float64) (float64, error) {
	a, err := Level(signal, freqHz, sampleRate)
	if err != nil {
		return 0, err
	}
	return core.LinearToDB(a), nil
}

func interpolatePeak(mag []float64, k int) float64 {
	if k <= 0 || k >= len(mag)-1 {
		return mag[k]
	}

	if mag[k-1] <= 0 || mag[k] <= 0 || mag[k+1] <= 0 {
		return mag[k]
	}

	alpha := core.LinearToDB(mag[k-1])
	beta := core.LinearToDB(mag[k])
	gamma := core.LinearToDB(mag[k+1])

	denom := alpha - 2*beta + gamma
	if denom == 0 {
		return mag[k]
	}

	p := 0.5 * (alpha - gamma) / denom
	return core.DBToLinear(beta - 0.25*(alpha-gamma)*p)
}

// hann returns a periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
