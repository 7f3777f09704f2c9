// SPDX-License-Identifier: EPL-2.0

package beeptalk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/beeptalk/seq"
	"github.com/ik5/beeptalk/utils"
)

var (
	ErrNoLimit     = errors.New("render limit must be positive")
	ErrInvalidRate = errors.New("sample rate must be positive")
)

// RenderPCM16 drains up to limit samples of s into 16-bit PCM. A limit is
// required since sequences may be endless.
func RenderPCM16(s seq.Sequence, limit int) ([]int16, error) {
	if limit <= 0 {
		return nil, ErrNoLimit
	}

	var out []int16
	if l, ok := s.(seq.Lener); ok {
		out = make([]int16, 0, min(l.Len(), limit))
	}
	for range limit {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, utils.Float32ToInt16(v))
	}
	return out, nil
}

// RenderWAV writes up to limit samples of s as a mono 16-bit WAV file and
// returns how many samples it wrote.
func RenderWAV(w io.WriteSeeker, s seq.Sequence, rate, limit int) (int, error) {
	if rate <= 0 {
		return 0, ErrInvalidRate
	}
	pcm, err := RenderPCM16(s, limit)
	if err != nil {
		return 0, err
	}

	data := make([]int, len(pcm))
	for i, v := range pcm {
		data[i] = int(v)
	}

	enc := wav.NewEncoder(w, rate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return 0, fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("finishing wav file: %w", err)
	}
	return len(pcm), nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV to a plain writer such as a
// pipe, where RenderWAV cannot seek back to patch the header.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	blockAlign := channels * bitsPerSample / 8
	dataSize := uint32(len(samples) * blockAlign)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	const chunk = 8192
	buf := make([]byte, 0, min(len(samples), chunk)*2)
	for i := 0; i < len(samples); i += chunk {
		buf = buf[:0]
		for _, s := range samples[i:min(i+chunk, len(samples))] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}
	return nil
}
