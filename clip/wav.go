// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// WAVDecoder decodes integer PCM WAV files of 8, 16, 24 or 32 bits.
type WAVDecoder struct{}

func (WAVDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	return newIntSource(dec, dec.Format(), int(dec.SampleBitDepth()))
}
