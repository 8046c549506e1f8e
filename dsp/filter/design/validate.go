package design

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSampleRate reports a sample rate that is not a positive finite number.
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive and finite")
	// ErrInvalidFrequency reports a frequency that is not a positive finite number.
	ErrInvalidFrequency = errors.New("design: frequency must be positive and finite")
	// ErrAboveNyquist reports a frequency at or above half the sample rate.
	ErrAboveNyquist = errors.New("design: frequency must be below Nyquist")
	// ErrInvalidQ reports a quality factor that is not a positive finite number.
	ErrInvalidQ = errors.New("design: Q must be positive and finite")
	// ErrInvalidGain reports a NaN or infinite gain.
	ErrInvalidGain = errors.New("design: gain must be finite")
)

// CheckFrequency reports whether freq can be designed at sampleRate:
// both positive and finite, freq strictly below sampleRate/2.
func CheckFrequency(freq, sampleRate float64) error {
	if !isPositiveFinite(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	if !isPositiveFinite(freq) {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, freq)
	}

	if nyquist := sampleRate / 2; freq >= nyquist {
		return fmt.Errorf("%w: %v Hz >= %v Hz", ErrAboveNyquist, freq, nyquist)
	}

	return nil
}

// CheckQ reports whether q is usable by [ConstantQPeak].
func CheckQ(q float64) error {
	if !isPositiveFinite(q) {
		return fmt.Errorf("%w: %v", ErrInvalidQ, q)
	}

	return nil
}

// CheckGain reports whether gainDB is usable by [ConstantQPeak].
func CheckGain(gainDB float64) error {
	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidGain, gainDB)
	}

	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
