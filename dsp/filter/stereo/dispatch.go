package stereo

import (
	"github.com/cwbudde/audio-util/dsp/buffer"
	"github.com/cwbudde/audio-util/dsp/filter/biquad"
)

var lanePool = buffer.NewPool()

// ProcessBuffer filters b in place according to its channel count. A nil
// filter, nil or empty buffer, or a channel count below 1 is a no-op.
func (f *Filter) ProcessBuffer(b *buffer.Buffer) {
	if b == nil {
		return
	}
	f.ProcessInterleaved(b.Samples(), b.Channels())
}

// ProcessInterleaved filters data, interleaved with the given channel count,
// in place. It follows the same routing as ProcessBuffer.
func (f *Filter) ProcessInterleaved(data []float64, channels int) {
	if f == nil || len(data) == 0 || channels < 1 {
		return
	}

	if channels == 1 {
		f.kernel.ProcessBlock(&f.lanes[0], data)
		return
	}

	if channels == 2 {
		data = data[:len(data)&^1]
	}

	if f.kernel.Name() == biquad.ScalarKernelName {
		for i, x := range data {
			u := &f.lanes[laneOf(i, channels)]
			data[i] = u.Mix(x, u.ProcessSample(x))
		}
		return
	}

	f.processGathered(data, channels)
}

// processGathered copies each lane's samples into contiguous scratch, runs
// the block kernel and writes the results back. Each lane sees its samples
// in the same order as the per-sample traversal.
func (f *Filter) processGathered(data []float64, channels int) {
	scratch := lanePool.Get(len(data))
	defer lanePool.Put(scratch)

	for lane := range f.lanes {
		s := scratch.Samples()[:0]
		for i, x := range data {
			if laneOf(i, channels) == lane {
				s = append(s, x)
			}
		}

		f.kernel.ProcessBlock(&f.lanes[lane], s)

		j := 0
		for i := range data {
			if laneOf(i, channels) == lane {
				data[i] = s[j]
				j++
			}
		}
	}
}

// ProcessChannel filters a contiguous single-channel block through one lane.
func (f *Filter) ProcessChannel(data []float64, l Lane) {
	if f == nil || len(data) == 0 {
		return
	}
	f.kernel.ProcessBlock(&f.lanes[laneIndex(l)], data)
}

// laneOf folds sample index i of an interleaved stream onto a lane by the
// parity of its channel.
func laneOf(i, channels int) int {
	return (i % channels) & 1
}
