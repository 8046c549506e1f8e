//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/audio-util/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "sse2",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		ProcessBlock: processBlock,
	})
}

// processBlock is a 2x-unrolled scalar kernel. The second sample reads the
// first sample's input and output straight from registers instead of
// round-tripping them through the delay variables.
func processBlock(c registry.Coefficients, s registry.State, buf []float64) registry.State {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	c0, d0 := c.C0, c.D0
	xz1, xz2, yz1, yz2 := s.XZ1, s.XZ2, s.YZ1, s.YZ2

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := registry.FlushUnderflow(a0*x0 + a1*xz1 + a2*xz2 - b1*yz1 - b2*yz2)

		x1 := buf[i+1]
		y1 := registry.FlushUnderflow(a0*x1 + a1*x0 + a2*xz1 - b1*y0 - b2*yz1)

		buf[i] = y0*c0 + x0*d0
		buf[i+1] = y1*c0 + x1*d0

		xz2, xz1 = x0, x1
		yz2, yz1 = y0, y1
	}

	if i < n {
		x := buf[i]
		y := registry.FlushUnderflow(a0*x + a1*xz1 + a2*xz2 - b1*yz1 - b2*yz2)

		yz2, yz1 = yz1, y
		xz2, xz1 = xz1, x
		buf[i] = y*c0 + x*d0
	}

	return registry.State{XZ1: xz1, XZ2: xz2, YZ1: yz1, YZ2: yz2}
}
