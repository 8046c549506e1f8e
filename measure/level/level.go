// Package level computes the broadband amplitude figures audio-util reports
// for a signal: RMS, peak, crest factor and the gain between two signals.
package level

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/audio-util/dsp/core"
)

// Stats holds amplitude statistics of one signal.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
}

// Calculate returns the Stats of signal. An empty signal yields zero values
// and -Inf for every dB field.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{
			RMS_dB:         math.Inf(-1),
			Peak_dB:        math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	rms := RMS(signal)
	peak := Peak(signal)

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:         n,
		DC:             vecmath.Sum(signal) / float64(n),
		RMS:            rms,
		RMS_dB:         core.LinearToDB(rms),
		Peak:           peak,
		Peak_dB:        core.LinearToDB(peak),
		CrestFactor:    crest,
		CrestFactor_dB: core.LinearToDB(crest),
	}
}

// RMS returns the root-mean-square of signal, or 0 when it is empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(meanSquare(signal))
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return vecmath.MaxAbs(signal)
}

// GainDB returns the power ratio of after to before in dB. Silence in
// before yields +Inf (or NaN when both are silent).
func GainDB(before, after []float64) float64 {
	pb := meanSquare(before)
	pa := meanSquare(after)

	if pb == 0 {
		if pa == 0 {
			return math.NaN()
		}
		return math.Inf(1)
	}

	return core.LinearPowerToDB(pa / pb)
}

func meanSquare(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return vecmath.DotProduct(signal, signal) / float64(len(signal))
}
