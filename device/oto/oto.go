// SPDX-License-Identifier: EPL-2.0

//go:build oto

// Package oto plays engine streams through an oto v3 context.
//
// oto pulls bytes from an io.Reader; the reader here calls the fill
// routine whenever its buffer runs dry and encodes the result as
// little-endian float32. oto allows one context per process, so the first
// Open fixes the sample rate and channel count for every later stream.
package oto

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/beeptalk/engine"
)

var ErrConfigMismatch = errors.New("oto context already opened with a different config")

// Device lazily owns the process oto context.
type Device struct {
	bufferSize time.Duration

	mu  sync.Mutex
	ctx *oto.Context
	cfg engine.StreamConfig
}

// New returns a Device. bufferSize is oto's output buffer, zero for its
// default.
func New(bufferSize time.Duration) *Device {
	return &Device{bufferSize: bufferSize}
}

func (d *Device) context(cfg engine.StreamConfig) (*oto.Context, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ctx != nil {
		if cfg.SampleRate != d.cfg.SampleRate || cfg.Channels != d.cfg.Channels {
			return nil, fmt.Errorf("%w: have %+v, want %+v", ErrConfigMismatch, d.cfg, cfg)
		}
		return d.ctx, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   d.bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	d.ctx, d.cfg = ctx, cfg
	return ctx, nil
}

func (d *Device) Open(cfg engine.StreamConfig, fill engine.FillFunc) (engine.Stream, error) {
	ctx, err := d.context(cfg)
	if err != nil {
		return nil, err
	}

	r := newReader(cfg, fill)
	return &Stream{player: ctx.NewPlayer(r), r: r}, nil
}

const bytesPerSample = 4

// reader adapts a fill routine to io.Reader. Read runs on oto's goroutine
// and only touches pre-allocated buffers.
type reader struct {
	fill     engine.FillFunc
	channels int
	frames   int
	rate     int

	samples []float32
	bytes   []byte
	pos     int
	end     int

	delivered atomic.Uint64
	finished  atomic.Bool
}

func newReader(cfg engine.StreamConfig, fill engine.FillFunc) *reader {
	n := cfg.FramesPerBuffer * cfg.Channels
	return &reader{
		fill:     fill,
		channels: cfg.Channels,
		frames:   cfg.FramesPerBuffer,
		rate:     cfg.SampleRate,
		samples:  make([]float32, n),
		bytes:    make([]byte, n*bytesPerSample),
	}
}

func (r *reader) Read(p []byte) (int, error) {
	if r.pos == r.end {
		if r.finished.Load() {
			return 0, io.EOF
		}
		r.refill()
		if r.pos == r.end {
			return 0, io.EOF
		}
	}
	n := copy(p, r.bytes[r.pos:r.end])
	r.pos += n
	r.delivered.Add(uint64(n))
	return n, nil
}

func (r *reader) refill() {
	now := r.time()
	n, res := r.fill(r.samples, r.frames, engine.TimeInfo{Now: now, DAC: now})
	engine.ZeroFrom(r.samples, n, r.channels)

	used := r.samples
	if res != engine.Continue {
		used = r.samples[:n*r.channels]
		r.finished.Store(true)
	}
	for i, v := range used {
		binary.LittleEndian.PutUint32(r.bytes[i*bytesPerSample:], math.Float32bits(v))
	}
	r.pos, r.end = 0, len(used)*bytesPerSample
}

func (r *reader) time() time.Duration {
	frames := r.delivered.Load() / uint64(r.channels*bytesPerSample)
	return time.Duration(frames) * time.Second / time.Duration(r.rate)
}

// Stream is an oto player fed by the fill routine.
type Stream struct {
	player *oto.Player
	r      *reader
}

func (s *Stream) Start() error {
	s.player.Play()
	return nil
}

func (s *Stream) Stop() error {
	s.player.Pause()
	return nil
}

func (s *Stream) Close() error {
	return s.player.Close()
}

// IsActive is false once oto has drained the final buffer.
func (s *Stream) IsActive() bool { return s.player.IsPlaying() }

// Time is the duration handed to oto so far, which runs ahead of the
// speaker by oto's buffer.
func (s *Stream) Time() time.Duration { return s.r.time() }
