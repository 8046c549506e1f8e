package wavio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/audio-util/dsp/buffer"
	"github.com/cwbudde/audio-util/internal/testutil"
)

func TestRoundTripBitDepths(t *testing.T) {
	left := testutil.DeterministicSine(440, 44100, 0.5, 1000)
	right := testutil.DeterministicSine(1000, 44100, -0.8, 1000)
	in := buffer.FromInterleaved(testutil.Interleave(left, right), 2, 44100)

	for _, bits := range []int{8, 16, 24, 32} {
		t.Run(strconv.Itoa(bits)+"bit", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tone.wav")
			require.NoError(t, Write(path, in, bits))

			out, format, err := Read(path)
			require.NoError(t, err)

			assert.Equal(t, Format{SampleRate: 44100, Channels: 2, BitDepth: bits, AudioFormat: 1}, format)
			assert.Equal(t, 2, out.Channels())
			assert.Equal(t, 44100, out.SampleRate())
			require.Equal(t, in.Len(), out.Len())

			tol := 2 / math.Pow(2, float64(bits-1))
			testutil.RequireSliceNearlyEqual(t, out.Samples(), in.Samples(), tol)
		})
	}
}

func TestWriteClampsOutOfRange(t *testing.T) {
	in := buffer.FromInterleaved([]float64{1.5, -1.5, 1, -1, 0}, 1, 8000)

	path := filepath.Join(t.TempDir(), "clip16.wav")
	require.NoError(t, Write(path, in, 16))
	out, _, err := Read(path)
	require.NoError(t, err)

	max16 := 32767.0 / 32768.0
	assert.Equal(t, []float64{max16, -max16, max16, -max16, 0}, out.Samples())

	path = filepath.Join(t.TempDir(), "clip8.wav")
	require.NoError(t, Write(path, in, 8))
	out, _, err = Read(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{127.0 / 128, -1, 127.0 / 128, -1, 0}, out.Samples())
}

func TestEncodeWritesCompleteFramesOnly(t *testing.T) {
	in := buffer.FromInterleaved([]float64{0.1, 0.2, 0.3, 0.4, 0.5}, 2, 22050)

	path := filepath.Join(t.TempDir(), "partial.wav")
	require.NoError(t, Write(path, in, 16))

	out, _, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Len())
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "missing.wav"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("this is not a wav file at all, just some text")))
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, _, err = Decode(nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDecodeRejectsFloatFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "float.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, 44100, 32, 1, 3)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:           []int{0, 1, 2, 3},
		SourceBitDepth: 32,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	_, _, err = Read(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteRejectsInvalidParameters(t *testing.T) {
	dir := t.TempDir()
	good := buffer.New(4, 2, 44100)

	tests := []struct {
		name string
		buf  *buffer.Buffer
		bits int
	}{
		{"nil-buffer", nil, 16},
		{"bit-depth", good, 12},
		{"zero-rate", buffer.New(4, 1, 0), 16},
		{"too-many-channels", buffer.New(4, 17, 44100), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".wav")
			err := Write(path, tt.buf, tt.bits)
			require.ErrorIs(t, err, ErrInvalidParameter)

			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "no file should be created")
		})
	}
}

func TestWriteToMissingDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "no", "such", "dir.wav"), buffer.New(1, 1, 8000), 16)
	require.ErrorIs(t, err, ErrWrite)
}

func TestPCMConversions(t *testing.T) {
	assert.Equal(t, 0.0, toFloat(128, 8))
	assert.Equal(t, -1.0, toFloat(0, 8))
	assert.Equal(t, -1.0, toFloat(-32768, 16))
	assert.Equal(t, 0.5, toFloat(4194304, 24))
	assert.Equal(t, -1.0, toFloat(math.MinInt32, 32))

	assert.Equal(t, 255, fromFloat(1, 8))
	assert.Equal(t, 0, fromFloat(-1, 8))
	assert.Equal(t, 128, fromFloat(0, 8))
	assert.Equal(t, 32767, fromFloat(2, 16))
	assert.Equal(t, -8388607, fromFloat(-1, 24))
	assert.Equal(t, 2147483647, fromFloat(1, 32))

	assert.True(t, SupportedBitDepth(24))
	assert.False(t, SupportedBitDepth(12))
}
