package wavio

import (
	"fmt"

	"github.com/cwbudde/audio-util/dsp/core"
)

// MaxChannels is the largest channel count accepted on read and write.
const MaxChannels = 16

// SupportedBitDepth reports whether bits is a PCM depth this package handles.
func SupportedBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

// toFloat converts one decoded PCM integer to a normalized sample.
// 8-bit WAV data is unsigned with a 128 offset.
func toFloat(v, bits int) float64 {
	switch bits {
	case 8:
		return float64(v-128) / 128.0
	case 16:
		return float64(v) / 32768.0
	case 24:
		return float64(v) / 8388608.0
	default:
		return float64(v) / 2147483648.0
	}
}

// fromFloat converts a normalized sample to a PCM integer of the given
// depth. Out-of-range input is clamped to [-1, 1] and the scaled value is
// truncated toward zero.
func fromFloat(x float64, bits int) int {
	x = core.Clamp(x, -1, 1)

	switch bits {
	case 8:
		return min(int(x*128.0+128), 255)
	case 16:
		return int(x * 32767.0)
	case 24:
		return int(x * 8388607.0)
	default:
		return int(x * 2147483647.0)
	}
}

func checkLayout(channels, bits int) error {
	if channels < 1 || channels > MaxChannels {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}
	if !SupportedBitDepth(bits) {
		return fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, bits)
	}
	return nil
}
