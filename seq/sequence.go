// SPDX-License-Identifier: EPL-2.0

package seq

// Sequence is a forward producer of samples, conventionally in [-1,1].
type Sequence interface {
	// Next returns the next sample. ok is false once the sequence is
	// exhausted; later calls keep returning false.
	Next() (sample float32, ok bool)
}

// Bidi is a Sequence that can also be drained from its end.
type Bidi interface {
	Sequence
	// NextBack returns the last not yet consumed sample.
	NextBack() (sample float32, ok bool)
}

// Cloner is a Bidi sequence that can be copied cheaply.
//
// Clone allocates and is meant for the control context. CopyFrom rewinds the
// receiver to the state of src without allocating, which is what loops use
// on the real-time path.
type Cloner[T any] interface {
	Bidi
	Clone() T
	CopyFrom(src T)
}

// Lener is implemented by sequences that know how many samples remain.
type Lener interface {
	Len() int
}

// Collect drains s forward into a new slice. It never returns for an
// infinite sequence.
func Collect(s Sequence) []float32 {
	var out []float32
	if l, ok := s.(Lener); ok {
		out = make([]float32, 0, l.Len())
	}
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// CollectBack drains b from its end into a new slice, so the result is in
// reverse order.
func CollectBack(b Bidi) []float32 {
	var out []float32
	if l, ok := b.(Lener); ok {
		out = make([]float32, 0, l.Len())
	}
	for {
		v, ok := b.NextBack()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

type reversed struct {
	b Bidi
}

// Reverse returns a view of b with Next and NextBack swapped.
func Reverse(b Bidi) Bidi {
	if r, ok := b.(reversed); ok {
		return r.b
	}
	return reversed{b: b}
}

func (r reversed) Next() (float32, bool)     { return r.b.NextBack() }
func (r reversed) NextBack() (float32, bool) { return r.b.Next() }

// Taken limits a sequence to a number of samples.
type Taken struct {
	s    Sequence
	left int
}

// Take returns at most n samples of s.
func Take(s Sequence, n int) *Taken {
	return &Taken{s: s, left: max(n, 0)}
}

func (t *Taken) Next() (float32, bool) {
	if t.left == 0 {
		return 0, false
	}
	v, ok := t.s.Next()
	if !ok {
		t.left = 0
		return 0, false
	}
	t.left--
	return v, true
}
