// SPDX-License-Identifier: EPL-2.0

package seq

// Tick is the zero-payload notification sent by a Ticker.
type Tick struct{}

// Ticker passes samples through unchanged and sends a Tick every time the
// number of samples it has yielded reaches a multiple of its period. Next
// and NextBack share one counter. Calls past the end yield nothing and do
// not count, so an exhausted Ticker can be polled forever.
//
// Sends never block. The channel is buffered and a full buffer means the
// receiver is gone or stuck, which is a logic error: the Ticker panics with
// ErrTickOverflow instead of dropping the tick.
type Ticker struct {
	data   Sequence
	back   Bidi
	every  uint64
	count  uint64
	ch     chan Tick
	closed bool
}

// NewTicker wraps data and returns the tick channel. every below one is
// treated as one, buffer below one as one.
func NewTicker(data Sequence, every, buffer int) (*Ticker, <-chan Tick) {
	ch := make(chan Tick, max(buffer, 1))
	t := &Ticker{
		data:  data,
		every: uint64(max(every, 1)),
		ch:    ch,
	}
	t.back, _ = data.(Bidi)
	return t, ch
}

// Count returns the number of samples yielded so far.
func (t *Ticker) Count() uint64 { return t.count }

func (t *Ticker) tick() {
	t.count++
	if t.count%t.every != 0 {
		return
	}
	select {
	case t.ch <- Tick{}:
	default:
		panic(ErrTickOverflow)
	}
}

func (t *Ticker) Next() (float32, bool) {
	v, ok := t.data.Next()
	if ok {
		t.tick()
	}
	return v, ok
}

// NextBack reports the end when the wrapped sequence is forward only.
func (t *Ticker) NextBack() (float32, bool) {
	if t.back == nil {
		return 0, false
	}
	v, ok := t.back.NextBack()
	if ok {
		t.tick()
	}
	return v, ok
}

// Close closes the tick channel. The Ticker must not be drained afterwards.
func (t *Ticker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	close(t.ch)
}
