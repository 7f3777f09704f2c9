// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"io"

	"github.com/go-audio/aiff"
)

// AIFFDecoder decodes integer PCM AIFF files.
type AIFFDecoder struct{}

func (AIFFDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrNotAiffFile
	}
	return newIntSource(dec, format, int(dec.BitDepth))
}
