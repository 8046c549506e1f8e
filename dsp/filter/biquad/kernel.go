package biquad

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	archregistry "github.com/cwbudde/audio-util/dsp/filter/biquad/internal/arch/registry"
)

// Kernel names accepted by KernelByName besides the registered backends.
const (
	ScalarKernelName      = "scalar"
	AcceleratedKernelName = "accelerated"
)

var (
	// ErrUnknownKernel is returned for a kernel name nothing is registered under.
	ErrUnknownKernel = errors.New("biquad: unknown kernel")
	// ErrUnsupportedKernel is returned for a registered kernel the running CPU
	// cannot execute.
	ErrUnsupportedKernel = errors.New("biquad: kernel not supported on this CPU")
)

// Kernel filters a contiguous block through one unit.
//
// Every Kernel writes the mixed output wet*C0 + in*D0 in place and leaves the
// unit's delay line exactly where per-sample processing would.
type Kernel interface {
	Name() string
	ProcessBlock(u *Unit, buf []float64)
}

type scalarKernel struct{}

func (scalarKernel) Name() string { return ScalarKernelName }

func (scalarKernel) ProcessBlock(u *Unit, buf []float64) {
	for i, x := range buf {
		buf[i] = u.Mix(x, u.ProcessSample(x))
	}
}

type archKernel struct {
	entry *archregistry.OpEntry
}

func (k archKernel) Name() string { return k.entry.Name }

func (k archKernel) ProcessBlock(u *Unit, buf []float64) {
	if len(buf) == 0 {
		return
	}

	u.state = State(k.entry.ProcessBlock(u.archCoefficients(), u.archState(), buf))
}

// ScalarKernel returns the reference kernel: ProcessSample followed by Mix,
// one sample at a time.
func ScalarKernel() Kernel {
	return scalarKernel{}
}

var (
	processBlockImpl     Kernel
	processBlockInitOnce sync.Once
)

// AcceleratedKernel returns the highest-priority registered kernel the
// running CPU supports. The choice is made once and cached.
func AcceleratedKernel() Kernel {
	processBlockInitOnce.Do(func() {
		entry := archregistry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			panic("biquad: no ProcessBlock implementation registered")
		}

		processBlockImpl = archKernel{entry: entry}
	})

	return processBlockImpl
}

// KernelByName resolves "scalar", "accelerated" or a registered backend name
// such as "generic" or "avx2".
func KernelByName(name string) (Kernel, error) {
	switch name {
	case ScalarKernelName:
		return ScalarKernel(), nil
	case AcceleratedKernelName, "":
		return AcceleratedKernel(), nil
	}

	entry := archregistry.Global.LookupName(name)
	if entry == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}

	if !cpu.Supports(cpu.DetectFeatures(), entry.SIMDLevel) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKernel, name)
	}

	return archKernel{entry: entry}, nil
}

// KernelNames lists every name KernelByName can resolve on this build,
// registered backends in priority order.
func KernelNames() []string {
	entries := archregistry.Global.ListEntries()

	names := make([]string, 0, len(entries)+2)
	names = append(names, ScalarKernelName, AcceleratedKernelName)
	for _, e := range entries {
		names = append(names, e.Name)
	}

	return names
}
