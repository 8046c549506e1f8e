package design

import (
	"math"

	"github.com/cwbudde/audio-util/dsp/core"
	"github.com/cwbudde/audio-util/dsp/filter/biquad"
)

// ButterworthHighpass designs a second-order Butterworth high-pass at freq
// (Hz). The result is fully wet (C0=1, D0=0).
func ButterworthHighpass(freq, sampleRate float64) biquad.Coefficients {
	c := math.Tan(math.Pi * freq / sampleRate)
	c2 := c * c

	a0 := 1 / (1 + math.Sqrt2*c + c2)

	return biquad.Coefficients{
		A0: a0,
		A1: -2 * a0,
		A2: a0,
		B1: 2 * a0 * (c2 - 1),
		B2: a0 * (1 - math.Sqrt2*c + c2),
		C0: 1,
	}
}

// ButterworthLowpass designs a second-order Butterworth low-pass at freq (Hz).
// The result is fully wet (C0=1, D0=0).
func ButterworthLowpass(freq, sampleRate float64) biquad.Coefficients {
	c := 1 / math.Tan(math.Pi*freq/sampleRate)
	c2 := c * c

	a0 := 1 / (1 + math.Sqrt2*c + c2)

	return biquad.Coefficients{
		A0: a0,
		A1: 2 * a0,
		A2: a0,
		B1: 2 * a0 * (1 - c2),
		B2: a0 * (1 - math.Sqrt2*c + c2),
		C0: 1,
	}
}

// ConstantQPeak designs a parametric peaking EQ centered at freq (Hz) with
// gainDB of boost (>= 0) or cut (< 0) and quality factor q.
//
// Boost and cut use mirrored sections so the bandwidth stays the same for
// equal |gainDB|. The magnitude at freq is exactly gainDB. Both branches
// reduce to the same unity section at gainDB = 0.
func ConstantQPeak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	k2 := k * k
	v0 := core.DBToLinear(gainDB)

	d0 := 1 + k/q + k2
	e0 := 1 + k/(v0*q) + k2
	a := 1 + (v0/q)*k + k2
	b := 2 * (k2 - 1)
	g := 1 - (v0/q)*k + k2
	d := 1 - k/q + k2
	e := 1 - k/(v0*q) + k2

	if gainDB >= 0 {
		return biquad.Coefficients{
			A0: a / d0,
			A1: b / d0,
			A2: g / d0,
			B1: b / d0,
			B2: d / d0,
			C0: 1,
		}
	}

	return biquad.Coefficients{
		A0: d0 / e0,
		A1: b / e0,
		A2: d / e0,
		B1: b / e0,
		B2: e / e0,
		C0: 1,
	}
}
