// SPDX-License-Identifier: EPL-2.0

// Package clip turns recorded sounds into tables the synthesis code can
// loop.
//
// Decoders for WAV, AIFF, MP3 and Ogg Vorbis produce a Source of
// interleaved float samples. Load drains a Source, averages its channels
// to mono and resamples it to the engine rate, so a clip can be played
// with the same Repeater and Smoother machinery as a generated tone:
//
//	t, err := clip.LoadFile(nil, "bleep.wav", 44100)
//	if err != nil {
//		return err
//	}
//	s := builder.Loop(t, 500)
//
// Clips are decoded once, up front. Nothing here runs on the real-time
// path.
package clip
