// SPDX-License-Identifier: EPL-2.0

package tone

import "math"

// SinTable returns one cycle of a sine wave period samples long. A period
// of zero (or less) yields a single silent sample.
func SinTable(period int) []float32 {
	if period <= 0 {
		return []float32{0}
	}
	out := make([]float32, period)
	fillCycle(out)
	return out
}

func fillCycle(dst []float32) {
	p := float64(len(dst))
	for i := range dst {
		dst[i] = float32(math.Sin(float64(i) / p * 2 * math.Pi))
	}
}

// MultiSinTable superimposes one sine per period, averaged so the result
// stays in [-1,1]. The table is LCM(periods) long, so every component
// completes a whole number of cycles and the table loops without phase
// drift. Non-positive periods are ignored; if none remain the result is a
// single silent sample.
func MultiSinTable(periods []int) []float32 {
	kept := make([]int, 0, len(periods))
	for _, p := range periods {
		if p > 0 {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return []float32{0}
	}

	return superpose(kept, LCM(kept))
}

// superpose fills a table of length l with the averaged sines of periods,
// all of which must be positive.
func superpose(periods []int, l int) []float32 {
	n := float64(len(periods))
	out := make([]float32, l)
	for i := range out {
		var sum float32
		for _, p := range periods {
			sum += float32(math.Sin(float64(i)/float64(p)*2*math.Pi) / n)
		}
		out[i] = sum
	}
	return out
}

// LCM returns the least common multiple of values by catch-up addition:
// each value keeps a running total and the smallest total is advanced by
// its own value until all totals agree. Empty input returns 0. Values must
// be positive.
func LCM(values []int) int {
	l, _ := BoundedLCM(values, 0)
	return l
}

// BoundedLCM is LCM that gives up once a running total passes limit,
// returning false. A limit of zero or less means no limit.
func BoundedLCM(values []int, limit int) (int, bool) {
	if len(values) == 0 {
		return 0, true
	}

	totals := make([]int, len(values))
	copy(totals, values)
	for {
		lo, hi := totals[0], totals[0]
		for _, v := range totals[1:] {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		if limit > 0 && hi > limit {
			return 0, false
		}
		if lo == hi {
			return lo, true
		}
		for i, v := range totals {
			if v == lo {
				totals[i] += values[i]
			}
		}
	}
}

// TransitionTable glides from start to end one period at a time, playing
// loopsPer cycles at every intermediate period, both ends included. A
// period of exactly zero along the way contributes loopsPer silent samples.
func TransitionTable(start, end, loopsPer int) []float32 {
	diff, dir := end-start, 1
	if diff < 0 {
		diff, dir = -diff, -1
	}
	loopsPer = max(loopsPer, 0)

	size := 0
	for d := range diff + 1 {
		p := start + d*dir
		if p <= 0 {
			size += loopsPer
		} else {
			size += p * loopsPer
		}
	}

	out := make([]float32, size)
	pos := 0
	for d := range diff + 1 {
		p := start + d*dir
		if p <= 0 {
			pos += loopsPer
			continue
		}
		for range loopsPer {
			fillCycle(out[pos : pos+p])
			pos += p
		}
	}
	return out
}
