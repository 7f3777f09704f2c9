// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"time"

	"github.com/ik5/beeptalk/seq"
)

// FrameFunc produces the sample for one frame. frame counts from zero
// since the stream was opened; now is the stream clock of the buffer and
// dac is when this frame reaches the output. Returning false completes the
// stream at that frame.
type FrameFunc func(frame uint64, now, dac time.Duration) (float32, bool)

// The fillers below run on the driver thread. They only index into out
// and read their own fields.

type seqFiller struct {
	s        seq.Sequence
	channels int
}

func (f *seqFiller) fill(out []float32, frames int, _ TimeInfo) (int, Result) {
	for i := range frames {
		v, ok := f.s.Next()
		if !ok {
			return i, Abort
		}
		writeFrame(out, i, f.channels, v)
	}
	return frames, Continue
}

type callbackFiller struct {
	cb       FrameFunc
	channels int
	period   time.Duration
	frame    uint64
}

func (f *callbackFiller) fill(out []float32, frames int, t TimeInfo) (int, Result) {
	for i := range frames {
		dac := t.DAC + time.Duration(i)*f.period
		v, ok := f.cb(f.frame, t.Now, dac)
		if !ok {
			return i, Complete
		}
		f.frame++
		writeFrame(out, i, f.channels, v)
	}
	return frames, Continue
}

type sharedFiller struct {
	sh       *Shared
	channels int
}

func (f *sharedFiller) fill(out []float32, frames int, _ TimeInfo) (int, Result) {
	if !f.sh.mu.TryLock() {
		return 0, Continue
	}
	defer f.sh.mu.Unlock()

	if f.sh.s == nil {
		return 0, Continue
	}
	for i := range frames {
		v, ok := f.sh.s.Next()
		if !ok {
			return i, Continue
		}
		writeFrame(out, i, f.channels, v)
	}
	return frames, Continue
}

func writeFrame(out []float32, frame, channels int, v float32) {
	base := frame * channels
	for c := range channels {
		out[base+c] = v
	}
}

// ZeroFrom clears out from frame written on. Drivers call it after a fill
// routine returns.
func ZeroFrom(out []float32, written, channels int) {
	if start := written * channels; start < len(out) {
		clear(out[start:])
	}
}
