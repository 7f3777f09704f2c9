// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	ErrUnknownFormat       = errors.New("unknown clip format")
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrNotAiffFile         = errors.New("not an AIFF file")
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
	ErrInvalidRate         = errors.New("sample rate must be positive")
	ErrEmptyClip           = errors.New("clip has no samples")
)
