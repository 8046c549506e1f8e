package biquad

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response of the mixed output,
// C0*H(e^jw) + D0, at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return complex(c.C0, 0)*c.recurrenceResponse(freqHz, sampleRate) + complex(c.D0, 0)
}

func (c *Coefficients) recurrenceResponse(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.A0, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	den := complex(1, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 of the recurrence alone, ignoring the mix,
// using a closed-form expression.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2

	num := (a0-a2)*(a0-a2) + a1*a1 + (a1*(a0+a2)+a0*a2*cw)*cw
	den := (1-b2)*(1-b2) + b1*b1 + (b1*(b2+1)+cw*b2)*cw
	return num / den
}

// MagnitudeDB returns the mixed output magnitude 20*log10(|Response(f)|).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase of Response in radians, in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// ImpulseResponse computes n mixed output samples for a unit impulse.
// The delay line is saved and restored so the unit is left unchanged.
func (u *Unit) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := u.State()
	u.FlushDelays()

	ir := make([]float64, n)
	ir[0] = 1
	ScalarKernel().ProcessBlock(u, ir)

	u.SetState(saved)
	return ir
}
