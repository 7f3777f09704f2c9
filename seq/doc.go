// SPDX-License-Identifier: EPL-2.0

// Package seq provides lazy sample sequences and the combinators used to
// build longer signals out of short periodic tables.
//
// # Sequences
//
// A Sequence produces one float32 sample per call and reports false once it
// is exhausted:
//
//	type Sequence interface {
//	    Next() (float32, bool)
//	}
//
// A Bidi sequence can also be drained from its end with NextBack, which is
// what makes reversed playback and seam smoothing possible. Both ends may be
// consumed from the same goroutine; a sequence is never shared between
// goroutines while it is being drained.
//
// # Building Blocks
//
//   - Table: one period of a waveform backed by a shared immutable buffer
//   - Silence: a constant value repeated a bounded number of times
//   - Repeater: loops a cloneable base a number of plays
//   - Chain and Then: concatenation (bidirectional and forward-only)
//   - Cycle: loops a cloneable base forever
//   - Smoother: crossfades the seam between two sequences with a linear ramp
//   - Ticker: sends a Tick every N samples consumed
//   - Reverse, Take, Collect and CollectBack: adapters and helpers
//
// # Real-time Use
//
// Next and NextBack of every type in this package are allocation free, so a
// fully built pipeline can be drained from an audio driver callback. All
// buffers (tables, ramps, staged repeat tails) are allocated when the
// sequence is constructed.
//
// # Example
//
//	table := seq.NewTable(tone.SinTable(100))
//	wave := seq.NewRepeater(table, 45)
//	fade := seq.NewSmoother(seq.NewSilence(0, 10), wave, 0.01)
//	samples := seq.Collect(fade)
package seq
