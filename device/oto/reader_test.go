// SPDX-License-Identifier: EPL-2.0

//go:build oto

package oto

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/beeptalk/engine"
)

func decode(b []byte) []float32 {
	out := make([]float32, len(b)/bytesPerSample)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*bytesPerSample:]))
	}
	return out
}

func TestReader_EncodesAndEnds(t *testing.T) {
	t.Parallel()

	calls := 0
	fill := func(out []float32, frames int, _ engine.TimeInfo) (int, engine.Result) {
		calls++
		for i := range frames {
			out[i*2], out[i*2+1] = 0.5, 0.5
		}
		if calls == 2 {
			return 1, engine.Abort
		}
		return frames, engine.Continue
	}

	r := newReader(engine.StreamConfig{SampleRate: 1000, Channels: 2, FramesPerBuffer: 2}, fill)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, decode(got))
	assert.Equal(t, 3*time.Millisecond, r.time())

	n, err := r.Read(make([]byte, 8))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_ShortReads(t *testing.T) {
	t.Parallel()

	fill := func(out []float32, frames int, _ engine.TimeInfo) (int, engine.Result) {
		for i := range frames {
			out[i] = float32(i)
		}
		return frames, engine.Continue
	}
	r := newReader(engine.StreamConfig{SampleRate: 1000, Channels: 1, FramesPerBuffer: 4}, fill)

	p := make([]byte, 6)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	rest := make([]byte, 64)
	n, err = r.Read(rest)
	require.NoError(t, err)
	assert.Equal(t, 10, n, "a read never crosses a buffer boundary")

	all := append(p, rest[:n]...)
	assert.Equal(t, []float32{0, 1, 2, 3}, decode(all))
}

func TestReader_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	fill := func(_ []float32, frames int, _ engine.TimeInfo) (int, engine.Result) {
		return frames, engine.Continue
	}
	r := newReader(engine.StreamConfig{SampleRate: 48000, Channels: 2, FramesPerBuffer: 64}, fill)
	p := make([]byte, 512)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = r.Read(p)
	})
	assert.Zero(t, allocs)
}
