// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"fmt"

	"github.com/ik5/beeptalk/seq"
)

// Builder turns frequency codes and millisecond durations into sequences
// using one Config.
type Builder struct {
	cfg Config
}

// NewBuilder returns a Builder configured by opts on top of DefaultConfig.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{cfg: ApplyOptions(opts...)}
}

// Config returns the configuration in use.
func (b *Builder) Config() Config { return b.cfg }

// Pitch converts a frequency code to a period in samples. Callers must
// filter out code 0.
func (b *Builder) Pitch(code int) int {
	return b.cfg.PitchConstant / code
}

// Ticks converts milliseconds to samples.
func (b *Builder) Ticks(millis int) int {
	return b.cfg.LoopAdjust * max(millis, 0)
}

// Wave returns a sine at code sustained for about millis, rounded down to a
// whole number of periods but never shorter than one period. Code 0 (or a
// code too high to have a period) is silence for exactly millis.
func (b *Builder) Wave(code, millis int) *seq.Repeater[*seq.Table] {
	if code <= 0 {
		return b.silentWave(millis)
	}
	period := b.Pitch(code)
	if period == 0 {
		return b.silentWave(millis)
	}
	return seq.NewRepeater(seq.NewTable(SinTable(period)), b.Ticks(millis)/period)
}

func (b *Builder) silentWave(millis int) *seq.Repeater[*seq.Table] {
	return seq.NewRepeater(seq.NewTable([]float32{0}), b.Ticks(millis))
}

// Loop repeats an arbitrary table for about millis.
func (b *Builder) Loop(t *seq.Table, millis int) *seq.Repeater[*seq.Table] {
	n := t.Len()
	if n == 0 {
		return seq.NewRepeater(t, 1)
	}
	return seq.NewRepeater(t, b.Ticks(millis)/n)
}

// Silence returns millis worth of zero samples.
func (b *Builder) Silence(millis int) *seq.Silence {
	return seq.NewSilence(0, b.Ticks(millis))
}

// MultiWave plays each code for millis, one after the other. Codes whose
// period is shorter than MinPeriod are played as silence.
func (b *Builder) MultiWave(codes []int, millis int) *seq.Chained {
	if len(codes) == 0 {
		return seq.Chain(b.Silence(millis))
	}

	parts := make([]seq.Bidi, 0, len(codes))
	for _, code := range codes {
		if code <= 0 || b.Pitch(code) < b.cfg.MinPeriod {
			parts = append(parts, b.Silence(millis))
			continue
		}
		parts = append(parts, b.Wave(code, millis))
	}
	return seq.Chain(parts...)
}

// Bookend surrounds w with millis of silence on both sides and ramps into
// and out of it at SmoothStep per sample.
func (b *Builder) Bookend(w seq.Bidi, millis int) *seq.Smoother {
	step := b.cfg.SmoothStep
	inner := seq.NewSmoother(b.Silence(millis), w, step)
	return seq.NewSmoother(inner, b.Silence(millis), step)
}

// Chord plays all codes at once for about millis. An empty chord is
// silence. The table is as long as the least common multiple of the
// periods; when that passes MaxTableLen nothing is allocated and the error
// wraps ErrTableTooLong.
func (b *Builder) Chord(codes []int, millis int) (*seq.Repeater[*seq.Table], error) {
	periods := make([]int, 0, len(codes))
	for _, code := range codes {
		if p := b.period(code); p > 0 {
			periods = append(periods, p)
		}
	}
	if len(periods) == 0 {
		return b.silentWave(millis), nil
	}

	l, ok := BoundedLCM(periods, b.cfg.MaxTableLen)
	if !ok {
		return nil, fmt.Errorf("%w: chord of periods %v exceeds %d samples", ErrTableTooLong, periods, b.cfg.MaxTableLen)
	}
	table := superpose(periods, l)
	return seq.NewRepeater(seq.NewTable(table), b.Ticks(millis)/len(table)), nil
}

// Transition glides from startCode to endCode over about millis. Each
// intermediate period gets the same number of cycles, at least one. When
// both codes map to the same period the result is a plain tone of that
// period.
func (b *Builder) Transition(startCode, endCode, millis int) *seq.Table {
	start, end := b.period(startCode), b.period(endCode)
	ticks := b.Ticks(millis)

	if start == 0 && end == 0 {
		return seq.NewTable(make([]float32, ticks))
	}

	diff := end - start
	if diff < 0 {
		diff = -diff
	}
	if diff == 0 {
		return seq.NewTable(TransitionTable(start, end, max(ticks/start, 1)))
	}

	loopsPer := 2 * ticks / (diff * (start + end))
	return seq.NewTable(TransitionTable(start, end, max(loopsPer, 1)))
}

// period is Pitch with code 0 mapped to period 0.
func (b *Builder) period(code int) int {
	if code <= 0 {
		return 0
	}
	return b.Pitch(code)
}
