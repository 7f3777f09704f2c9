// SPDX-License-Identifier: EPL-2.0

// Package voice makes robot speech out of text.
//
// Babble sings a short tone per character in a fixed pitch pattern, with
// silence for whitespace, and fades in and out. A Beeper instead gives
// every character a pitch of its own (see Scale). Speaker wraps either in
// an Utterance, which reveals the text character by character in step with
// the audio actually played:
//
//	sp := voice.NewSpeaker(tone.NewBuilder(), 100)
//	u := sp.Say("hello there")
//	eng.NewStream(u.Sequence())
//	eng.Start()
//	u.Reveal(ctx, func(r rune) { fmt.Print(string(r)) })
package voice
