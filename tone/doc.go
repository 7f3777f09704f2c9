// SPDX-License-Identifier: EPL-2.0

// Package tone builds waveform tables and the sequences that play them.
//
// Pitches are given as frequency codes, abstract integers proportional to
// frequency. A code becomes a period in samples through
//
//	period = PitchConstant / code
//
// and durations in milliseconds become sample counts through LoopAdjust.
// With FromSampleRate a code is exactly hertz*100 at that rate.
//
// Degenerate periods never fail: a period of zero turns into silence.
package tone
