// SPDX-License-Identifier: EPL-2.0

package seq

// Repeater loops a cloneable base sequence a fixed number of plays.
//
// The plays argument counts total plays, values below one are treated as a
// single play, so the forward length is always len(base)*max(plays, 1).
//
// Draining from the back stages a copy of the base as a tail which is then
// consumed first from its end. When forward iteration later runs out of
// fresh plays it continues into whatever is left of that tail, so the two
// ends meet without losing or duplicating samples.
type Repeater[T Cloner[T]] struct {
	base    T
	current T
	tail    T
	hasTail bool
	left    int
}

// NewRepeater returns a Repeater over a private copy of base.
func NewRepeater[T Cloner[T]](base T, plays int) *Repeater[T] {
	return &Repeater[T]{
		base:    base.Clone(),
		current: base.Clone(),
		tail:    base.Clone(),
		left:    max(plays, 1) - 1,
	}
}

// Base returns the sequence being looped. Callers must not drain it.
func (r *Repeater[T]) Base() T { return r.base }

// Len returns the samples left, or 0 when T does not implement Lener.
func (r *Repeater[T]) Len() int {
	base, ok := any(r.base).(Lener)
	if !ok {
		return 0
	}
	n := any(r.current).(Lener).Len() + r.left*base.Len()
	if r.hasTail {
		n += any(r.tail).(Lener).Len()
	}
	return n
}

func (r *Repeater[T]) Next() (float32, bool) {
	if v, ok := r.current.Next(); ok {
		return v, true
	}
	if r.left == 0 {
		if !r.hasTail {
			return 0, false
		}
		r.current.CopyFrom(r.tail)
		r.hasTail = false
		return r.current.Next()
	}
	r.left--
	r.current.CopyFrom(r.base)
	return r.current.Next()
}

func (r *Repeater[T]) NextBack() (float32, bool) {
	if r.hasTail {
		if v, ok := r.tail.NextBack(); ok {
			return v, true
		}
	}
	if r.left == 0 {
		return r.current.NextBack()
	}
	r.left--
	r.tail.CopyFrom(r.base)
	r.hasTail = true
	return r.tail.NextBack()
}

func (r *Repeater[T]) Clone() *Repeater[T] {
	return &Repeater[T]{
		base:    r.base,
		current: r.current.Clone(),
		tail:    r.tail.Clone(),
		hasTail: r.hasTail,
		left:    r.left,
	}
}

func (r *Repeater[T]) CopyFrom(src *Repeater[T]) {
	r.base = src.base
	r.current.CopyFrom(src.current)
	r.tail.CopyFrom(src.tail)
	r.hasTail = src.hasTail
	r.left = src.left
}

// Cycle loops a cloneable base forever. It is forward only.
type Cycle[T Cloner[T]] struct {
	base    T
	current T
}

// NewCycle returns an endless loop over a private copy of base. An empty
// base yields an empty sequence rather than spinning.
func NewCycle[T Cloner[T]](base T) *Cycle[T] {
	return &Cycle[T]{base: base.Clone(), current: base.Clone()}
}

func (c *Cycle[T]) Next() (float32, bool) {
	if v, ok := c.current.Next(); ok {
		return v, true
	}
	c.current.CopyFrom(c.base)
	return c.current.Next()
}
