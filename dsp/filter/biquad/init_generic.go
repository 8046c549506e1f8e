//go:build purego || (!amd64 && !arm64)

package biquad

import (
	_ "github.com/cwbudde/audio-util/dsp/filter/biquad/internal/arch/generic"
	_ "github.com/cwbudde/audio-util/dsp/filter/biquad/internal/arch/registry"
)
