// SPDX-License-Identifier: EPL-2.0

package seq

import "math"

// Smoother joins two sequences with a linear ramp so the seam does not
// click.
//
// The ramp runs from the last sample of first to the first sample of last.
// Both of those samples are taken out of their sequences when the Smoother
// is built and appear exactly once, as the ramp endpoints.
type Smoother struct {
	first     Bidi
	firstDone bool
	ramp      []float32
	rampFront int
	rampBack  int
	last      Bidi
}

// NewSmoother builds the ramp between first and last using step as the
// per-sample increment.
//
// If first is empty the ramp is empty and last is left untouched. If last
// is empty the ramp holds only the final sample of first.
func NewSmoother(first, last Bidi, step float32) *Smoother {
	s := &Smoother{first: first, last: last}
	if start, ok := first.NextBack(); ok {
		if stop, ok := last.Next(); ok {
			s.ramp = Ramp(start, stop, step)
		} else {
			s.ramp = []float32{start}
		}
	}
	s.rampBack = len(s.ramp)
	return s
}

// Ramp returns the values from start towards stop in increments of step,
// followed by stop itself. Stepped values that reach or pass stop are
// dropped, so stop appears exactly once and the ramp is strictly monotonic.
// The result has at most ceil(|stop-start|/step)+1 elements. A non-positive
// step jumps straight from start to stop.
func Ramp(start, stop, step float32) []float32 {
	if start == stop {
		return []float32{stop}
	}
	if step <= 0 {
		return []float32{start, stop}
	}

	dist := float64(stop) - float64(start)
	dir := float32(1)
	if dist < 0 {
		dir = -1
		dist = -dist
	}
	before := func(v float32) bool {
		if dir > 0 {
			return v < stop
		}
		return v > stop
	}

	n := int(math.Ceil(dist / float64(step)))
	out := make([]float32, 0, n+1)
	for i := range n {
		v := start + float32(dir*step*float32(i))
		if !before(v) {
			break
		}
		if len(out) > 0 && v == out[len(out)-1] {
			continue
		}
		out = append(out, v)
	}
	return append(out, stop)
}

// Len sums what is left of the ramp and of both sides that implement Lener.
func (s *Smoother) Len() int {
	n := s.rampBack - s.rampFront
	if l, ok := s.first.(Lener); ok && !s.firstDone {
		n += l.Len()
	}
	if l, ok := s.last.(Lener); ok {
		n += l.Len()
	}
	return n
}

func (s *Smoother) Next() (float32, bool) {
	if !s.firstDone {
		if v, ok := s.first.Next(); ok {
			return v, true
		}
		s.firstDone = true
	}
	if s.rampFront < s.rampBack {
		v := s.ramp[s.rampFront]
		s.rampFront++
		return v, true
	}
	return s.last.Next()
}

func (s *Smoother) NextBack() (float32, bool) {
	if v, ok := s.last.NextBack(); ok {
		return v, true
	}
	if s.rampFront < s.rampBack {
		s.rampBack--
		return s.ramp[s.rampBack], true
	}
	if s.firstDone {
		return 0, false
	}
	return s.first.NextBack()
}
