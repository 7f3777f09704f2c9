// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"context"
	"math"
	"sync"

	"github.com/ik5/beeptalk/seq"
	"github.com/ik5/beeptalk/tone"
)

// Speaker turns text into utterances at a fixed character rate.
type Speaker struct {
	b          *tone.Builder
	charMillis int
}

// NewSpeaker returns a Speaker giving each character charMillis
// milliseconds. Values below one are treated as one.
func NewSpeaker(b *tone.Builder, charMillis int) *Speaker {
	return &Speaker{b: b, charMillis: max(charMillis, 1)}
}

// Say returns an utterance of text as Babble.
func (s *Speaker) Say(text string) *Utterance {
	return newUtterance(text, Babble(s.b, text, s.charMillis), s.b.Ticks(s.charMillis))
}

// Beep returns an utterance of text as a Beeper around hz.
func (s *Speaker) Beep(text string, hz float64) *Utterance {
	rate := float64(s.b.Config().LoopAdjust) * 1000
	ticks := s.b.Ticks(s.charMillis)
	return newUtterance(text, NewBeeper(text, ticks, 2*math.Pi*hz/rate), ticks)
}

// Utterance is a sound that reveals its text as it is played. The engine
// plays Sequence; Reveal, on another goroutine, hands out one character per
// character period of played audio.
type Utterance struct {
	text   []rune
	ticker *seq.Ticker
	ticks  <-chan seq.Tick
	done   chan struct{}
	once   sync.Once
}

// newUtterance spreads the characters evenly over s when its length is
// known, otherwise reveals one every charTicks samples.
func newUtterance(text string, s seq.Sequence, charTicks int) *Utterance {
	runes := []rune(text)
	every := max(charTicks, 1)
	buffer := len(runes) + 1
	if l, ok := s.(seq.Lener); ok {
		every = max(l.Len()/max(len(runes), 1), 1)
		// Room for every tick the sound can produce, so the audio side
		// never overflows even when nobody reveals.
		buffer = l.Len()/every + 1
	}
	ticker, ticks := seq.NewTicker(s, every, buffer)
	return &Utterance{
		text:   runes,
		ticker: ticker,
		ticks:  ticks,
		done:   make(chan struct{}),
	}
}

// Text returns the full text.
func (u *Utterance) Text() string { return string(u.text) }

// Sequence returns the sound to hand to the engine.
func (u *Utterance) Sequence() seq.Bidi { return u.ticker }

// Done is closed when Reveal returns: after the last character, when the
// sound ran out of ticks first, or when its context ended.
func (u *Utterance) Done() <-chan struct{} { return u.done }

// Reveal calls fn with each character in order, one per tick of the
// played sound, and returns when all are out, when the tick channel is
// closed or when ctx is done. It must not be called twice.
func (u *Utterance) Reveal(ctx context.Context, fn func(rune)) error {
	defer u.once.Do(func() { close(u.done) })

	for _, r := range u.text {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-u.ticks:
			if !ok {
				return nil
			}
			fn(r)
		}
	}
	return nil
}

// Close releases the tick channel. Call it only after the engine is done
// with Sequence.
func (u *Utterance) Close() { u.ticker.Close() }
