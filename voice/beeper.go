// SPDX-License-Identifier: EPL-2.0

package voice

import "math"

// Beeper sings text one character at a time, each character a sine whose
// frequency is the base frequency times Scale of the character. It is
// forward only and does not allocate while playing.
type Beeper struct {
	scales    []float64
	charTicks int
	step      float64
	t         int
}

// NewBeeper returns a Beeper holding every character for charTicks
// samples. step is the phase advance per sample at scale 1, that is
// 2π·hz/rate.
func NewBeeper(text string, charTicks int, step float64) *Beeper {
	scales := make([]float64, 0, len(text))
	for _, r := range text {
		scales = append(scales, float64(Scale(r)))
	}
	return &Beeper{
		scales:    scales,
		charTicks: max(charTicks, 1),
		step:      step,
	}
}

// Len returns the number of samples left.
func (b *Beeper) Len() int {
	return max(len(b.scales)*b.charTicks-b.t, 0)
}

func (b *Beeper) Next() (float32, bool) {
	i := b.t / b.charTicks
	if i >= len(b.scales) {
		return 0, false
	}
	v := 0.95 * math.Sin(float64(b.t)*b.scales[i]*b.step)
	b.t++
	return float32(v), true
}
