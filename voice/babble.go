// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"unicode"

	"github.com/ik5/beeptalk/seq"
	"github.com/ik5/beeptalk/tone"
)

// pattern is the frequency code sung for a character, picked by the
// character's position. With the default pitch constant these are periods
// of 125, 150, 100 and 200 samples.
var pattern = [4]int{36000, 30000, 45000, 22500}

// Codes returns one frequency code per rune of text. Whitespace maps to 0,
// which the tone builder plays as silence.
func Codes(text string) []int {
	codes := make([]int, 0, len(text))
	i := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			codes = append(codes, 0)
		} else {
			codes = append(codes, pattern[i%len(pattern)])
		}
		i++
	}
	return codes
}

// Babble returns the speech-like wave for text: one tone per character,
// charMillis long, wrapped in a quarter character of faded silence on each
// side. The result plays backwards as well as forwards.
func Babble(b *tone.Builder, text string, charMillis int) *seq.Smoother {
	return b.Bookend(b.MultiWave(Codes(text), charMillis), charMillis/4)
}

// Scale is the relative pitch of a character in a Beeper.
//
//	whitespace            0
//	not a letter          0.5
//	numeric letter        0.65
//	t s h n p             0.9
//	vowels                0.75
//	q z w y j k           1.2
//	other letters         1.0
//
// Upper case letters sound 0.1 higher.
func Scale(r rune) float32 {
	switch {
	case unicode.IsSpace(r):
		return 0
	case !unicode.In(r, unicode.L, unicode.Nl):
		return 0.5
	case unicode.IsNumber(r):
		return 0.65
	}

	var s float32
	switch unicode.ToLower(r) {
	case 't', 's', 'h', 'n', 'p':
		s = 0.9
	case 'a', 'e', 'i', 'o', 'u':
		s = 0.75
	case 'q', 'z', 'w', 'y', 'j', 'k':
		s = 1.2
	default:
		s = 1.0
	}
	if unicode.IsUpper(r) {
		s += 0.1
	}
	return s
}
