// SPDX-License-Identifier: EPL-2.0

package seq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRamp_CountAndEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		start, stop float32
		step        float32
	}{
		{name: "ascending exact", start: 0, stop: 1, step: 0.25},
		{name: "ascending inexact", start: 0, stop: 0.5, step: 0.2},
		{name: "descending", start: 1, stop: 0, step: 0.3},
		{name: "negative range", start: -0.5, stop: 0.5, step: 0.25},
		{name: "tiny step", start: 0, stop: 0.7, step: 0.001},
		{name: "equal endpoints", start: 0.4, stop: 0.4, step: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ramp := Ramp(tt.start, tt.stop, tt.step)

			dist := math.Abs(float64(tt.stop) - float64(tt.start))
			most := int(math.Ceil(dist/float64(tt.step))) + 1
			require.LessOrEqual(t, len(ramp), most)
			require.GreaterOrEqual(t, len(ramp), most-1)

			assert.Equal(t, tt.stop, ramp[len(ramp)-1], "ramp must end on stop")
			if tt.start != tt.stop {
				assert.Equal(t, tt.start, ramp[0], "ramp must start on start")
			}

			for i := 1; i < len(ramp); i++ {
				if tt.stop > tt.start {
					assert.Greater(t, ramp[i], ramp[i-1], "index %d", i)
				} else {
					assert.Less(t, ramp[i], ramp[i-1], "index %d", i)
				}
			}
		})
	}
}

func TestRamp_StopOnlyOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		start, stop, step float32
		want              []float32
	}{
		{name: "tenths", start: 0, stop: 0.3, step: 0.1, want: []float32{0, 0.1, 0.2, 0.3}},
		{name: "fifths", start: 0, stop: 0.6, step: 0.2, want: []float32{0, 0.2, 0.4, 0.6}},
		{name: "tenths down", start: 0.3, stop: 0, step: 0.1},
		{name: "fifths down", start: 0.6, stop: 0, step: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ramp := Ramp(tt.start, tt.stop, tt.step)
			if tt.want != nil {
				assert.Equal(t, tt.want, ramp)
			}

			assert.Equal(t, tt.start, ramp[0])
			assert.Equal(t, tt.stop, ramp[len(ramp)-1])
			for i := 1; i < len(ramp); i++ {
				assert.NotEqual(t, ramp[i-1], ramp[i], "adjacent values at %d repeat", i)
			}
		})
	}
}

func TestRamp_Values(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float32{0, 0.25, 0.5, 0.75, 1}, Ramp(0, 1, 0.25))
	assert.InDeltaSlice(t, []float32{1, 0.7, 0.4, 0.1, 0}, Ramp(1, 0, 0.3), 1e-6)
	assert.Equal(t, []float32{0.2, 0.9}, Ramp(0.2, 0.9, 0))
}

func TestSmoother_ForwardOrder(t *testing.T) {
	t.Parallel()

	s := NewSmoother(NewSilence(0, 3), NewTable([]float32{1, 1, 1}), 0.25)

	assert.Equal(t, 9, s.Len())
	want := []float32{0, 0, 0, 0.25, 0.5, 0.75, 1, 1, 1}
	assert.Equal(t, want, Collect(s))
}

func TestSmoother_BackwardOrder(t *testing.T) {
	t.Parallel()

	s := NewSmoother(NewSilence(0, 3), NewTable([]float32{1, 1, 1}), 0.25)

	want := []float32{1, 1, 1, 0.75, 0.5, 0.25, 0, 0, 0}
	assert.Equal(t, want, CollectBack(s))
}

func TestSmoother_ForwardIsARemainingRampB(t *testing.T) {
	t.Parallel()

	a := []float32{0.1, 0.2, -0.4}
	b := []float32{0.5, 0.3, 0.2}
	step := float32(0.2)

	got := Collect(NewSmoother(NewTable(a), NewTable(b), step))

	var want []float32
	want = append(want, a[:len(a)-1]...)
	want = append(want, Ramp(a[len(a)-1], b[0], step)...)
	want = append(want, b[1:]...)

	assert.Equal(t, want, got)
}

func TestSmoother_EmptySides(t *testing.T) {
	t.Parallel()

	t.Run("empty last keeps start", func(t *testing.T) {
		t.Parallel()

		s := NewSmoother(NewTable([]float32{0.1, 0.2}), NewTable(nil), 0.01)
		assert.Equal(t, []float32{0.1, 0.2}, Collect(s))
	})

	t.Run("empty first leaves last intact", func(t *testing.T) {
		t.Parallel()

		s := NewSmoother(NewTable(nil), NewTable([]float32{0.3, 0.4}), 0.01)
		assert.Equal(t, []float32{0.4, 0.3}, CollectBack(s))
	})

	t.Run("both empty", func(t *testing.T) {
		t.Parallel()

		s := NewSmoother(NewTable(nil), NewTable(nil), 0.01)
		assert.Empty(t, Collect(s))
		assert.Zero(t, s.Len())
	})
}

func TestSmoother_Bookend(t *testing.T) {
	t.Parallel()

	mk := func() *Smoother {
		signal := NewTable([]float32{0.5, 0.5, 0.5})
		inner := NewSmoother(NewSilence(0, 2), signal, 0.25)
		return NewSmoother(inner, NewSilence(0, 2), 0.25)
	}

	want := []float32{0, 0, 0.25, 0.5, 0.5, 0.5, 0.25, 0, 0}
	assert.Equal(t, want, Collect(mk()))
	assert.Equal(t, reversedCopy(want), CollectBack(mk()))
}

func TestSmoother_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	s := NewSmoother(
		NewRepeater(NewTable([]float32{0.1, 0.2}), 1_000_000),
		NewRepeater(NewTable([]float32{0.3, 0.4}), 1_000_000),
		0.001,
	)

	allocs := testing.AllocsPerRun(1000, func() {
		_, _ = s.Next()
		_, _ = s.NextBack()
	})
	assert.Zero(t, allocs)
}
