// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/beeptalk/seq"
)

// ReadAll drains src into one mono buffer and closes it.
func ReadAll(src Source) (samples []float32, err error) {
	defer func() {
		err = errors.Join(err, src.Close())
	}()

	mono := NewMonoMixer(src)
	buf := make([]float32, 4096)
	for {
		n, rerr := mono.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if errors.Is(rerr, io.EOF) {
			return samples, nil
		}
		if rerr != nil {
			return samples, fmt.Errorf("reading samples: %w", rerr)
		}
	}
}

// Load decodes src completely, mixes it to mono and resamples it to rate.
// The result is a table ready to be looped like any tone.
func Load(src Source, rate int) (*seq.Table, error) {
	if rate <= 0 {
		_ = src.Close()
		return nil, ErrInvalidRate
	}

	from := src.SampleRate()
	samples, err := ReadAll(src)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrEmptyClip
	}
	return seq.NewTable(Resample(samples, from, rate)), nil
}

// LoadFile is Load for a file, picking the decoder in r by extension. A nil
// registry means DefaultRegistry.
func LoadFile(r *Registry, path string, rate int) (*seq.Table, error) {
	if r == nil {
		r = DefaultRegistry()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := r.Decode(FormatOf(path), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Load(src, rate)
}
