// SPDX-License-Identifier: EPL-2.0

// Package headless is an output device without hardware.
//
// A goroutine stands in for the driver thread and calls the fill routine
// once per buffer, paced by the buffer period unless WithUnpaced is given.
// Filled buffers can be observed through a tap, which is how tests and the
// offline renderer see what would have been played.
package headless

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/beeptalk/engine"
)

var (
	ErrInvalidConfig = errors.New("invalid stream config")
	ErrClosed        = errors.New("stream closed")
)

// TapFunc sees every buffer after it was filled and zero padded. It runs
// on the driver goroutine and must not keep buf.
type TapFunc func(buf []float32)

type options struct {
	paced   bool
	tap     TapFunc
	latency time.Duration
}

// Option configures a Device.
type Option func(*options)

// WithUnpaced fills buffers back to back instead of in real time.
func WithUnpaced() Option {
	return func(o *options) { o.paced = false }
}

// WithTap installs fn as the buffer tap.
func WithTap(fn TapFunc) Option {
	return func(o *options) { o.tap = fn }
}

// WithLatency sets the reported distance between Now and DAC time.
func WithLatency(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.latency = d
		}
	}
}

// Device opens headless streams.
type Device struct {
	opts options
}

func New(opts ...Option) *Device {
	o := options{paced: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Device{opts: o}
}

func (d *Device) Open(cfg engine.StreamConfig, fill engine.FillFunc) (engine.Stream, error) {
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 || cfg.FramesPerBuffer <= 0 {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidConfig, cfg)
	}
	if fill == nil {
		return nil, fmt.Errorf("%w: nil fill routine", ErrInvalidConfig)
	}

	return &Stream{
		cfg:    cfg,
		fill:   fill,
		opts:   d.opts,
		buf:    make([]float32, cfg.FramesPerBuffer*cfg.Channels),
		period: time.Duration(cfg.FramesPerBuffer) * time.Second / time.Duration(cfg.SampleRate),
	}, nil
}

// Stream is a headless stream.
type Stream struct {
	cfg    engine.StreamConfig
	fill   engine.FillFunc
	opts   options
	buf    []float32
	period time.Duration

	active atomic.Bool
	frames atomic.Uint64

	mu     sync.Mutex
	stop   chan struct{}
	done   chan struct{}
	closed bool
}

func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stop != nil {
		select {
		case <-s.done:
		default:
			return nil
		}
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.active.Store(true)
	go s.run(s.stop, s.done)
	return nil
}

func (s *Stream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.halt()
	return nil
}

func (s *Stream) halt() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop, s.done = nil, nil
	s.active.Store(false)
}

// Close stops the stream. Closing twice is a no-op.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.halt()
	s.closed = true
	return nil
}

func (s *Stream) IsActive() bool { return s.active.Load() }

// Time is the duration of the frames played so far.
func (s *Stream) Time() time.Duration {
	return time.Duration(s.frames.Load()) * time.Second / time.Duration(s.cfg.SampleRate)
}

func (s *Stream) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer s.active.Store(false)

	var tick <-chan time.Time
	if s.opts.paced {
		t := time.NewTicker(s.period)
		defer t.Stop()
		tick = t.C
	}

	for {
		if tick != nil {
			select {
			case <-stop:
				return
			case <-tick:
			}
		} else {
			select {
			case <-stop:
				return
			default:
			}
		}

		now := s.Time()
		n, r := s.fill(s.buf, s.cfg.FramesPerBuffer, engine.TimeInfo{Now: now, DAC: now + s.opts.latency})
		engine.ZeroFrom(s.buf, n, s.cfg.Channels)
		if s.opts.tap != nil {
			s.opts.tap(s.buf)
		}
		s.frames.Add(uint64(s.cfg.FramesPerBuffer))

		if r != engine.Continue {
			return
		}
	}
}
