// SPDX-License-Identifier: EPL-2.0

// Package beeptalk synthesises beeps, chords, glides and robot "speech"
// as lazy sample sequences and plays them in real time.
//
// # Building Sound
//
// Sound is a seq.Sequence: something that hands out one float32 sample at
// a time and may also be drained from the back (seq.Bidi). The tone
// package builds them from frequency codes and durations:
//
//	b := tone.NewBuilder(tone.FromSampleRate(44100))
//	beep := b.Bookend(b.Wave(44000, 250), 20) // 440 Hz for 250 ms, faded
//
// Tones are short tables looped by seq.Repeater, glued with seq.Chain and
// joined without clicks by seq.Smoother. Nothing is rendered until the
// sequence is drained.
//
// # Playing
//
// The engine package drains a sequence inside an audio driver's fill
// routine without allocating:
//
//	e := engine.New(dev)
//	outcome, err := e.PlayAll(ctx, beep)
//
// Devices live under device/: portaudio and oto (behind the build tags of
// the same names) and headless, which needs no hardware.
//
// # Offline Rendering
//
// This package renders sequences without a device:
//
//	f, _ := os.Create("beep.wav")
//	n, err := beeptalk.RenderWAV(f, beep, 44100, 10*44100)
//
// RenderWAV needs a seekable writer; WriteWAV16 writes to plain ones.
//
// # Speech
//
// The voice package maps text to speech-like beep patterns and reveals the
// text in step with playback.
package beeptalk
