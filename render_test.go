// SPDX-License-Identifier: EPL-2.0

package beeptalk_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/beeptalk"
	"github.com/ik5/beeptalk/clip"
	"github.com/ik5/beeptalk/seq"
	"github.com/ik5/beeptalk/tone"
)

func TestRenderPCM16(t *testing.T) {
	t.Parallel()

	got, err := beeptalk.RenderPCM16(seq.NewTable([]float32{0, 0.5, -0.5, 1, -1, 2}), 100)
	require.NoError(t, err)
	assert.Equal(t, []int16{0, 16383, -16383, math.MaxInt16, -math.MaxInt16, math.MaxInt16}, got)
}

func TestRenderPCM16_Limit(t *testing.T) {
	t.Parallel()

	got, err := beeptalk.RenderPCM16(seq.NewCycle(seq.NewTable([]float32{1, 0})), 5)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	_, err = beeptalk.RenderPCM16(seq.NewSilence(0, 1), 0)
	assert.ErrorIs(t, err, beeptalk.ErrNoLimit)
}

func TestRenderWAV_RoundTrip(t *testing.T) {
	t.Parallel()

	b := tone.NewBuilder(tone.FromSampleRate(8000))
	want := seq.Collect(b.Wave(44000, 50))

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	n, err := beeptalk.RenderWAV(f, b.Wave(44000, 50), 8000, 1<<20)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, len(want), n)

	got, err := clip.LoadFile(nil, path, 8000)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got.Samples(), 2.0/32768)
}

func TestRenderWAV_InvalidRate(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	require.NoError(t, err)
	defer f.Close()

	_, err = beeptalk.RenderWAV(f, seq.NewSilence(0, 1), 0, 1)
	assert.ErrorIs(t, err, beeptalk.ErrInvalidRate)
}

func TestWriteWAV16(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1000, -1000, math.MaxInt16, math.MinInt16}

	var buf bytes.Buffer
	require.NoError(t, beeptalk.WriteWAV16(&buf, 16000, samples))

	raw := buf.Bytes()
	require.Len(t, raw, 44+2*len(samples))
	assert.Equal(t, "RIFF", string(raw[0:4]))
	assert.Equal(t, "WAVE", string(raw[8:12]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(raw[24:28]))
	assert.Equal(t, uint32(2*len(samples)), binary.LittleEndian.Uint32(raw[40:44]))

	src, err := clip.WAVDecoder{}.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 16000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())

	got, err := clip.ReadAll(src)
	require.NoError(t, err)
	require.Len(t, got, len(samples))
	for i, s := range samples {
		assert.InDelta(t, float32(s)/32768, got[i], 1e-6, "index %d", i)
	}
}

func BenchmarkRenderPCM16(b *testing.B) {
	builder := tone.NewBuilder()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = beeptalk.RenderPCM16(builder.Wave(44000, 100), 1<<20)
	}
}
