package wavio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/audio-util/dsp/buffer"
)

// WAVE format tags accepted as integer PCM.
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Format describes a decoded WAV stream.
type Format struct {
	SampleRate  int
	Channels    int
	BitDepth    int
	AudioFormat int
}

// Read decodes the WAV file at path.
func Read(path string) (*buffer.Buffer, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Format{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, Format{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	buf, format, err := Decode(f)
	if err != nil {
		return nil, Format{}, fmt.Errorf("%s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":        path,
		"sample_rate": format.SampleRate,
		"channels":    format.Channels,
		"bit_depth":   format.BitDepth,
		"frames":      buf.Frames(),
	}).Debug("decoded wav")

	return buf, format, nil
}

// Decode reads a complete WAV stream from r.
func Decode(r io.ReadSeeker) (*buffer.Buffer, Format, error) {
	if r == nil {
		return nil, Format{}, fmt.Errorf("%w: nil reader", ErrInvalidParameter)
	}

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		if dec.Err() != nil {
			return nil, Format{}, fmt.Errorf("%w: %w", ErrInvalidFormat, dec.Err())
		}
		return nil, Format{}, ErrInvalidFormat
	}

	format := Format{
		SampleRate:  int(dec.SampleRate),
		Channels:    int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
		AudioFormat: int(dec.WavAudioFormat),
	}

	if format.AudioFormat != formatPCM && format.AudioFormat != formatExtensible {
		return nil, Format{}, fmt.Errorf("%w: audio format %d", ErrUnsupportedFormat, format.AudioFormat)
	}
	if err := checkLayout(format.Channels, format.BitDepth); err != nil {
		return nil, Format{}, err
	}
	if format.SampleRate <= 0 {
		return nil, Format{}, fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, format.SampleRate)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Format{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	samples := make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = toFloat(v, format.BitDepth)
	}

	return buffer.FromInterleaved(samples, format.Channels, format.SampleRate), format, nil
}
