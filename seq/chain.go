// SPDX-License-Identifier: EPL-2.0

package seq

// Chained concatenates Bidi sequences. Forward iteration walks the parts
// from the first, backward iteration from the last.
type Chained struct {
	parts []Bidi
	front int
	back  int
}

// Chain concatenates parts in order.
func Chain(parts ...Bidi) *Chained {
	return &Chained{parts: parts, back: len(parts) - 1}
}

// Append adds more parts at the end. It must not be called once draining
// from the back has started.
func (c *Chained) Append(parts ...Bidi) *Chained {
	c.parts = append(c.parts, parts...)
	c.back = len(c.parts) - 1
	return c
}

// Len sums the remaining length of the parts that implement Lener.
func (c *Chained) Len() int {
	n := 0
	for i := c.front; i <= c.back; i++ {
		if l, ok := c.parts[i].(Lener); ok {
			n += l.Len()
		}
	}
	return n
}

func (c *Chained) Next() (float32, bool) {
	for c.front <= c.back {
		if v, ok := c.parts[c.front].Next(); ok {
			return v, true
		}
		c.front++
	}
	return 0, false
}

func (c *Chained) NextBack() (float32, bool) {
	for c.back >= c.front {
		if v, ok := c.parts[c.back].NextBack(); ok {
			return v, true
		}
		c.back--
	}
	return 0, false
}

// Series concatenates forward-only sequences, for example a finite intro
// followed by a Cycle.
type Series struct {
	parts []Sequence
	i     int
}

// Then concatenates parts in order.
func Then(parts ...Sequence) *Series {
	return &Series{parts: parts}
}

func (s *Series) Next() (float32, bool) {
	for s.i < len(s.parts) {
		if v, ok := s.parts[s.i].Next(); ok {
			return v, true
		}
		s.i++
	}
	return 0, false
}
