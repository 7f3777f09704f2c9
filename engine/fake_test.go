// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync/atomic"
	"time"
)

// fakeDevice hands the fill routine to the test instead of a driver.
type fakeDevice struct {
	openErr  error
	startErr error
	stopErr  error
	closeErr error

	cfg     StreamConfig
	fill    FillFunc
	streams []*fakeStream
}

func (d *fakeDevice) Open(cfg StreamConfig, fill FillFunc) (Stream, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	d.cfg = cfg
	d.fill = fill
	s := &fakeStream{dev: d}
	d.streams = append(d.streams, s)
	return s, nil
}

func (d *fakeDevice) last() *fakeStream { return d.streams[len(d.streams)-1] }

type fakeStream struct {
	dev    *fakeDevice
	active atomic.Bool
	closed bool
	now    time.Duration
}

func (s *fakeStream) Start() error {
	if s.dev.startErr != nil {
		return s.dev.startErr
	}
	s.active.Store(true)
	return nil
}

func (s *fakeStream) Stop() error {
	if s.dev.stopErr != nil {
		return s.dev.stopErr
	}
	s.active.Store(false)
	return nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	s.active.Store(false)
	return s.dev.closeErr
}

func (s *fakeStream) IsActive() bool      { return s.active.Load() }
func (s *fakeStream) Time() time.Duration { return s.now }
