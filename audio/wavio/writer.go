package wavio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/audio-util/dsp/buffer"
)

// Write encodes b as integer PCM at bitDepth into a new file at path,
// replacing any existing file.
func Write(path string, b *buffer.Buffer, bitDepth int) error {
	if err := checkBuffer(b, bitDepth); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := Encode(f, b, bitDepth); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":        path,
		"sample_rate": b.SampleRate(),
		"channels":    b.Channels(),
		"bit_depth":   bitDepth,
		"frames":      b.Frames(),
	}).Debug("encoded wav")

	return nil
}

// Encode writes b as integer PCM at bitDepth to w. Only complete frames are
// written; w is not closed.
func Encode(w io.WriteSeeker, b *buffer.Buffer, bitDepth int) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrInvalidParameter)
	}
	if err := checkBuffer(b, bitDepth); err != nil {
		return err
	}

	n := b.Frames() * b.Channels()
	data := make([]int, n)
	for i, x := range b.Samples()[:n] {
		data[i] = fromFloat(x, bitDepth)
	}

	enc := wav.NewEncoder(w, b.SampleRate(), bitDepth, b.Channels(), formatPCM)
	pcm := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: b.Channels(),
			SampleRate:  b.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

func checkBuffer(b *buffer.Buffer, bitDepth int) error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidParameter)
	}
	if b.SampleRate() <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, b.SampleRate())
	}
	if b.Channels() < 1 || b.Channels() > MaxChannels {
		return fmt.Errorf("%w: %d channels", ErrInvalidParameter, b.Channels())
	}
	if !SupportedBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d-bit PCM", ErrInvalidParameter, bitDepth)
	}
	return nil
}
