// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPCMReader stands in for the go-audio decoders.
type mockPCMReader struct {
	data []int
	pos  int
	err  error
}

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.data[m.pos:])
	m.pos += n
	return n, nil
}

func TestIntSource(t *testing.T) {
	t.Parallel()

	dec := &mockPCMReader{data: []int{0, 16384, -16384, 32767, -32768}}
	src, err := newIntSource(dec, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, 16)
	require.NoError(t, err)
	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float32{0, 0.5, -0.5}, dst)

	n, err = src.ReadSamples(dst)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF, "short read is the end")
	assert.InDelta(t, 1, dst[0], 1e-4)
	assert.Equal(t, float32(-1), dst[1])

	n, err = src.ReadSamples(dst)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)

	n, err = src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestIntSource_BitDepths(t *testing.T) {
	t.Parallel()

	for depth, full := range map[int]int{8: 128, 16: 32768, 24: 8388608, 32: 2147483648} {
		dec := &mockPCMReader{data: []int{full / 2}}
		src, err := newIntSource(dec, &goaudio.Format{NumChannels: 1, SampleRate: 1}, depth)
		require.NoError(t, err, "depth %d", depth)

		dst := make([]float32, 1)
		_, _ = src.ReadSamples(dst)
		assert.Equal(t, float32(0.5), dst[0], "depth %d", depth)
	}

	_, err := newIntSource(&mockPCMReader{}, &goaudio.Format{}, 12)
	assert.ErrorIs(t, err, ErrUnsupportedBitDepth)
}

func TestIntSource_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src, err := newIntSource(&mockPCMReader{err: boom}, &goaudio.Format{NumChannels: 2, SampleRate: 1}, 16)
	require.NoError(t, err)

	_, err = src.ReadSamples(make([]float32, 4))
	assert.ErrorIs(t, err, boom)
}

// mockMP3Reader simulates gomp3.Decoder.
type mockMP3Reader struct {
	sampleRate int
	samples    []int16
	offset     int
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}
	n := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range n {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(m.samples[m.offset+i]))
	}
	m.offset += n
	return n * 2, nil
}

func TestMP3Source(t *testing.T) {
	t.Parallel()

	src := &mp3Source{dec: &mockMP3Reader{sampleRate: 22050, samples: []int16{16384, -16384, 0, 8192, 1, 2}}}
	assert.Equal(t, 22050, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []float32{0.5, -0.5, 0, 0.25}, dst)

	n, err = src.ReadSamples(dst)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF)
}

// mockOggReader simulates oggvorbis.Reader, which counts values.
type mockOggReader struct {
	channels int
	values   []float32
	pos      int
}

func (m *mockOggReader) SampleRate() int { return 48000 }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.pos >= len(m.values) {
		return 0, io.EOF
	}
	n := copy(p, m.values[m.pos:])
	m.pos += n
	return n, nil
}

func TestVorbisSource_WholeFrames(t *testing.T) {
	t.Parallel()

	src := &vorbisSource{dec: &mockOggReader{channels: 2, values: []float32{1, 2, 3, 4, 5, 6}}}
	assert.Equal(t, 48000, src.SampleRate())

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "odd space reads whole frames only")
	assert.Equal(t, []float32{1, 2, 3, 4}, dst[:4])

	n, _ = src.ReadSamples(dst[:1])
	assert.Zero(t, n)

	n, err = src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = src.ReadSamples(dst)
	assert.ErrorIs(t, err, io.EOF)
}
