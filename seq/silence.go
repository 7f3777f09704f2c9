// SPDX-License-Identifier: EPL-2.0

package seq

// Silence repeats a single value a bounded number of times. With a zero
// value it is plain silence, which is what the name is about.
type Silence struct {
	value float32
	left  int
}

// NewSilence returns n copies of value.
func NewSilence(value float32, n int) *Silence {
	return &Silence{value: value, left: max(n, 0)}
}

func (s *Silence) Len() int { return s.left }

func (s *Silence) Next() (float32, bool) {
	if s.left == 0 {
		return 0, false
	}
	s.left--
	return s.value, true
}

// NextBack is the same as Next since every sample is equal.
func (s *Silence) NextBack() (float32, bool) { return s.Next() }

func (s *Silence) Clone() *Silence {
	c := *s
	return &c
}

func (s *Silence) CopyFrom(src *Silence) { *s = *src }
