// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/beeptalk/internal/audiotest"
	"github.com/ik5/beeptalk/seq"
)

func TestBuilder_Defaults(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	assert.Equal(t, DefaultConfig(), b.Config())
	assert.Equal(t, 22500, b.Pitch(200))
	assert.Equal(t, 100, b.Pitch(45000))
	assert.Equal(t, 4500, b.Ticks(100))
	assert.Zero(t, b.Ticks(-5))
}

func TestBuilder_Options(t *testing.T) {
	t.Parallel()

	t.Run("from sample rate", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder(FromSampleRate(48000))
		assert.Equal(t, 4_800_000, b.Config().PitchConstant)
		assert.Equal(t, 48, b.Config().LoopAdjust)
		assert.Equal(t, 109, b.Pitch(44000), "440 Hz at 48 kHz")
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder(
			WithPitchConstant(0),
			WithLoopAdjust(-1),
			WithSmoothStep(0),
			WithMinPeriod(-1),
			FromSampleRate(10),
			nil,
		)
		assert.Equal(t, DefaultConfig(), b.Config())
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder(WithPitchConstant(1000), WithLoopAdjust(2), WithSmoothStep(0.5), WithMinPeriod(3))
		assert.Equal(t, Config{PitchConstant: 1000, LoopAdjust: 2, SmoothStep: 0.5, MinPeriod: 3}, b.Config())
	})
}

func TestBuilder_WaveDuration(t *testing.T) {
	t.Parallel()

	b := NewBuilder()

	for _, code := range []int{200, 36000, 45000, 30000, 22500, 44000} {
		w := b.Wave(code, 100)
		period := b.Pitch(code)

		require.Equal(t, period, w.Base().Len(), "code %d", code)
		total := len(seq.Collect(w))
		assert.Equal(t, 0, total%period, "code %d must play whole periods", code)
		assert.InDelta(t, 45*100, total, float64(period), "code %d", code)
	}
}

func TestBuilder_WaveSilence(t *testing.T) {
	t.Parallel()

	b := NewBuilder()

	got := seq.Collect(b.Wave(0, 10))
	require.Len(t, got, 450)
	for _, v := range got {
		require.Zero(t, v)
	}

	// code above K has no period
	assert.Len(t, seq.Collect(b.Wave(5_000_000, 10)), 450)
}

func TestBuilder_Silence(t *testing.T) {
	t.Parallel()

	s := NewBuilder(WithLoopAdjust(3)).Silence(4)
	assert.Equal(t, make([]float32, 12), seq.Collect(s))
}

func TestBuilder_Loop(t *testing.T) {
	t.Parallel()

	b := NewBuilder(WithLoopAdjust(1))
	got := seq.Collect(b.Loop(seq.NewTable([]float32{1, 2, 3}), 10))
	assert.Equal(t, []float32{1, 2, 3, 1, 2, 3, 1, 2, 3}, got)

	assert.Empty(t, seq.Collect(b.Loop(seq.NewTable(nil), 10)))
}

func TestBuilder_MultiWave(t *testing.T) {
	t.Parallel()

	b := NewBuilder()

	// period 100, silence, period 4 which is below MinPeriod
	got := seq.Collect(b.MultiWave([]int{45000, 0, 1_125_000}, 100))
	require.Len(t, got, 3*4500)

	assert.Equal(t, seq.Collect(b.Wave(45000, 100)), got[:4500])
	for i, v := range got[4500:] {
		require.Zero(t, v, "index %d", 4500+i)
	}

	assert.Len(t, seq.Collect(b.MultiWave(nil, 10)), 450)
}

func TestBuilder_MultiWaveReversible(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	codes := []int{36000, 45000, 30000, 22500}

	fwd := seq.Collect(b.MultiWave(codes, 20))
	back := seq.CollectBack(b.MultiWave(codes, 20))
	audiotest.RequireMirror(t, fwd, back)
}

func TestBuilder_Chord(t *testing.T) {
	t.Parallel()

	b := NewBuilder()

	c, err := b.Chord([]int{45000, 30000}, 100)
	require.NoError(t, err)
	assert.Equal(t, 300, c.Base().Len())
	assert.Equal(t, 4500, c.Len())

	for _, codes := range [][]int{nil, {0}} {
		c, err := b.Chord(codes, 10)
		require.NoError(t, err)
		assert.Len(t, seq.Collect(c), 450, "codes %v", codes)
	}
}

func TestBuilder_ChordTooLong(t *testing.T) {
	t.Parallel()

	// Pairwise coprime periods 997, 991 and 983 need a table of close to
	// a billion samples.
	b := NewBuilder(WithPitchConstant(997 * 991 * 983))
	codes := []int{991 * 983, 997 * 983, 997 * 991}

	_, err := b.Chord(codes, 100)
	require.ErrorIs(t, err, ErrTableTooLong)

	small := NewBuilder(WithMaxTableLen(299))
	_, err = small.Chord([]int{45000, 30000}, 100)
	assert.ErrorIs(t, err, ErrTableTooLong)

	exact := NewBuilder(WithMaxTableLen(300))
	c, err := exact.Chord([]int{45000, 30000}, 100)
	require.NoError(t, err)
	assert.Equal(t, 300, c.Base().Len())
}

func TestBuilder_Transition(t *testing.T) {
	t.Parallel()

	b := NewBuilder()

	t.Run("glide", func(t *testing.T) {
		t.Parallel()

		// periods 100 up to 200, one cycle each
		got := b.Transition(45000, 22500, 100)
		assert.Equal(t, 101*150, got.Len())
	})

	t.Run("long glide uses more loops", func(t *testing.T) {
		t.Parallel()

		// periods 100 and 101, 2*45000/(1*201) = 447 loops each
		got := b.Transition(45000, 44554, 1000)
		assert.Equal(t, 447*(100+101), got.Len())
	})

	t.Run("same period", func(t *testing.T) {
		t.Parallel()

		got := seq.Collect(b.Transition(45000, 45000, 100))
		require.Len(t, got, 4500)
		assert.Equal(t, SinTable(100), got[:100])
	})

	t.Run("both silent", func(t *testing.T) {
		t.Parallel()

		got := seq.Collect(b.Transition(0, 0, 10))
		assert.Equal(t, make([]float32, 450), got)
	})
}

func TestBuilder_Bookend(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	const pad = 10
	n := b.Ticks(pad)

	w := b.Wave(45000, 20)
	wlen := w.Len()
	got := seq.Collect(b.Bookend(w, pad))

	require.GreaterOrEqual(t, len(got), 2*n+wlen-2)
	for i := range n - 1 {
		require.Zero(t, got[i], "leading index %d", i)
		require.Zero(t, got[len(got)-1-i], "trailing index %d", i)
	}
	for i := 1; i < len(got); i++ {
		step := got[i] - got[i-1]
		if step < 0 {
			step = -step
		}
		// no jump larger than one sine step at period 100
		require.Less(t, step, float32(0.07), "index %d", i)
	}
}
