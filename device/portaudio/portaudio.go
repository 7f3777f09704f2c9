// SPDX-License-Identifier: EPL-2.0

//go:build portaudio

// Package portaudio plays engine streams through PortAudio's default output
// device.
//
// PortAudio callbacks cannot end a stream from the Go side, so once the
// fill routine reports Complete or Abort the stream keeps running on
// silence and reports itself inactive. The engine then closes it.
package portaudio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/beeptalk/engine"
)

// Device is an initialised PortAudio host. Close terminates PortAudio.
type Device struct{}

// New initialises PortAudio.
func New() (*Device, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	return &Device{}, nil
}

// Close terminates PortAudio. Streams must be closed first.
func (d *Device) Close() error {
	return portaudio.Terminate()
}

func (d *Device) Open(cfg engine.StreamConfig, fill engine.FillFunc) (engine.Stream, error) {
	s := &Stream{fill: fill, channels: cfg.Channels}
	pa, err := portaudio.OpenDefaultStream(0, cfg.Channels, float64(cfg.SampleRate), cfg.FramesPerBuffer, s.callback)
	if err != nil {
		return nil, fmt.Errorf("failed to open output stream: %w", err)
	}
	s.pa = pa
	return s, nil
}

// Stream wraps a PortAudio output stream.
type Stream struct {
	pa       *portaudio.Stream
	fill     engine.FillFunc
	channels int

	started  atomic.Bool
	finished atomic.Bool
}

// callback runs on the PortAudio thread.
func (s *Stream) callback(out []float32, ti portaudio.StreamCallbackTimeInfo) {
	if s.finished.Load() {
		clear(out)
		return
	}
	frames := len(out) / s.channels
	n, r := s.fill(out, frames, engine.TimeInfo{Now: ti.CurrentTime, DAC: ti.OutputBufferDacTime})
	engine.ZeroFrom(out, n, s.channels)
	if r != engine.Continue {
		s.finished.Store(true)
	}
}

func (s *Stream) Start() error {
	if err := s.pa.Start(); err != nil {
		return err
	}
	s.started.Store(true)
	return nil
}

func (s *Stream) Stop() error {
	s.started.Store(false)
	return s.pa.Stop()
}

func (s *Stream) Close() error {
	s.started.Store(false)
	return s.pa.Close()
}

func (s *Stream) IsActive() bool {
	return s.started.Load() && !s.finished.Load()
}

func (s *Stream) Time() time.Duration { return s.pa.Time() }
