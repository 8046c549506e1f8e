package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/audio-util/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: processBlock,
	})
}

func processBlock(c registry.Coefficients, s registry.State, buf []float64) registry.State {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	c0, d0 := c.C0, c.D0
	xz1, xz2, yz1, yz2 := s.XZ1, s.XZ2, s.YZ1, s.YZ2

	for i, x := range buf {
		y := registry.FlushUnderflow(a0*x + a1*xz1 + a2*xz2 - b1*yz1 - b2*yz2)

		yz2, yz1 = yz1, y
		xz2, xz1 = xz1, x
		buf[i] = y*c0 + x*d0
	}

	return registry.State{XZ1: xz1, XZ2: xz2, YZ1: yz1, YZ2: yz2}
}
