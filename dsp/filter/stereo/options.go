package stereo

import "github.com/cwbudde/audio-util/dsp/filter/biquad"

type config struct {
	kernel biquad.Kernel
}

// Option configures a Filter.
type Option func(*config)

// WithKernel selects the block kernel used by the dispatcher. The default is
// biquad.ScalarKernel. A nil kernel is ignored.
func WithKernel(k biquad.Kernel) Option {
	return func(cfg *config) {
		if k != nil {
			cfg.kernel = k
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{kernel: biquad.ScalarKernel()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
