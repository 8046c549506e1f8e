//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/audio-util/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "neon",
		SIMDLevel:    cpu.SIMDNEON,
		Priority:     15,
		ProcessBlock: processBlock,
	})
}

// processBlock is a 4x-unrolled scalar kernel selected for NEON-capable CPUs.
// The recurrence is serial, so the unrolling only saves the delay-variable
// shuffles between samples.
func processBlock(c registry.Coefficients, s registry.State, buf []float64) registry.State {
	if len(buf) == 0 {
		return s
	}

	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	c0, d0 := c.C0, c.D0
	xz1, xz2, yz1, yz2 := s.XZ1, s.XZ2, s.YZ1, s.YZ2

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		x0, x1, x2, x3 := buf[i], buf[i+1], buf[i+2], buf[i+3]

		y0 := registry.FlushUnderflow(a0*x0 + a1*xz1 + a2*xz2 - b1*yz1 - b2*yz2)
		y1 := registry.FlushUnderflow(a0*x1 + a1*x0 + a2*xz1 - b1*y0 - b2*yz1)
		y2 := registry.FlushUnderflow(a0*x2 + a1*x1 + a2*x0 - b1*y1 - b2*y0)
		y3 := registry.FlushUnderflow(a0*x3 + a1*x2 + a2*x1 - b1*y2 - b2*y1)

		buf[i] = y0*c0 + x0*d0
		buf[i+1] = y1*c0 + x1*d0
		buf[i+2] = y2*c0 + x2*d0
		buf[i+3] = y3*c0 + x3*d0

		xz2, xz1 = x2, x3
		yz2, yz1 = y2, y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := registry.FlushUnderflow(a0*x + a1*xz1 + a2*xz2 - b1*yz1 - b2*yz2)

		yz2, yz1 = yz1, y
		xz2, xz1 = xz1, x
		buf[i] = y*c0 + x*d0
	}

	return registry.State{XZ1: xz1, XZ2: xz2, YZ1: yz1, YZ2: yz2}
}
