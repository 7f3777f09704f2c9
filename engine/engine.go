// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/beeptalk/seq"
)

// State is the lifecycle state of the engine's stream.
type State int32

const (
	StateClosed State = iota
	StateOpen
	StateRunning
	StateAborted
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateRunning:
		return "running"
	case StateAborted:
		return "aborted"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

type stream struct {
	dev     Stream
	inner   FillFunc
	kind    string
	state   atomic.Int32
	outcome atomic.Int32
}

// fill records how the source ended and never changes state itself.
func (st *stream) fill(out []float32, frames int, t TimeInfo) (int, Result) {
	n, r := st.inner(out, frames, t)
	if r != Continue {
		st.outcome.Store(int32(r))
	}
	return n, r
}

// Engine owns at most one output stream on a Device.
//
// Start, Stop, Close and the New*Stream methods serialise on a mutex and
// belong to the control context. IsActive, Time, State and Outcome never
// block and can be polled from anywhere.
type Engine struct {
	dev Device
	cfg Config
	log *slog.Logger

	mu  sync.Mutex
	cur atomic.Pointer[stream]
}

// New returns an Engine that opens streams on dev.
func New(dev Device, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Engine{
		dev: dev,
		cfg: cfg,
		log: cfg.Logger.With("component", "engine"),
	}
}

// Config returns the configuration in use.
func (e *Engine) Config() Config { return e.cfg }

// NewStream opens a stream that plays s, one sample per frame on every
// channel. The stream aborts in the buffer where s runs out. s belongs to
// the stream until it is closed.
func (e *Engine) NewStream(s seq.Sequence) error {
	f := &seqFiller{s: s, channels: e.cfg.Channels}
	return e.open("sequence", f.fill)
}

// NewCallbackStream opens a stream that asks cb for every frame. The
// stream completes at the first frame cb declines.
func (e *Engine) NewCallbackStream(cb FrameFunc) error {
	f := &callbackFiller{
		cb:       cb,
		channels: e.cfg.Channels,
		period:   time.Second / time.Duration(e.cfg.SampleRate),
	}
	return e.open("callback", f.fill)
}

// NewSharedStream opens a stream that plays whatever sh holds. It never
// ends by itself: an exhausted or busy slot plays silence.
func (e *Engine) NewSharedStream(sh *Shared) error {
	f := &sharedFiller{sh: sh, channels: e.cfg.Channels}
	return e.open("shared", f.fill)
}

func (e *Engine) open(kind string, fill FillFunc) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.closeLocked(); err != nil {
		return err
	}

	st := &stream{inner: fill, kind: kind}
	dev, err := e.dev.Open(e.cfg.stream(), st.fill)
	if err != nil {
		e.log.Error("open stream failed", "kind", kind, "error", err)
		return &DeviceError{Op: "open", Err: err}
	}
	st.dev = dev
	st.state.Store(int32(StateOpen))
	e.cur.Store(st)

	e.log.Debug("stream opened",
		"kind", kind,
		"sample_rate", e.cfg.SampleRate,
		"channels", e.cfg.Channels,
		"frames_per_buffer", e.cfg.FramesPerBuffer,
	)
	return nil
}

// Start begins playback of the open stream.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.cur.Load()
	if st == nil {
		return ErrNoStream
	}
	if err := st.dev.Start(); err != nil {
		e.log.Error("start stream failed", "kind", st.kind, "error", err)
		return &DeviceError{Op: "start", Err: err}
	}
	st.state.Store(int32(StateRunning))
	e.log.Debug("stream started", "kind", st.kind)
	return nil
}

// Stop pauses playback. The stream stays open and can be started again.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.cur.Load()
	if st == nil {
		return ErrNoStream
	}
	if err := st.dev.Stop(); err != nil {
		e.log.Error("stop stream failed", "kind", st.kind, "error", err)
		return &DeviceError{Op: "stop", Err: err}
	}
	st.state.Store(int32(StateOpen))
	e.log.Debug("stream stopped", "kind", st.kind)
	return nil
}

// Close releases the stream. Closing with no stream is a no-op. The stream
// is forgotten even when the device fails to close it.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.closeLocked()
}

func (e *Engine) closeLocked() error {
	st := e.cur.Swap(nil)
	if st == nil {
		return nil
	}
	st.state.Store(int32(StateClosed))
	if err := st.dev.Close(); err != nil {
		e.log.Error("close stream failed", "kind", st.kind, "error", err)
		return &DeviceError{Op: "close", Err: err}
	}
	e.log.Debug("stream closed", "kind", st.kind, "outcome", Result(st.outcome.Load()))
	return nil
}

// IsActive reports whether the stream is playing.
func (e *Engine) IsActive() bool {
	st := e.cur.Load()
	return st != nil && st.dev.IsActive()
}

// Time is the stream clock, zero without a stream.
func (e *Engine) Time() time.Duration {
	st := e.cur.Load()
	if st == nil {
		return 0
	}
	return st.dev.Time()
}

// State reports the lifecycle state. A started stream whose fill routine
// has ended it reads as Aborted or Completed once the device goes idle.
func (e *Engine) State() State {
	st := e.cur.Load()
	if st == nil {
		return StateClosed
	}
	s := State(st.state.Load())
	if s == StateRunning && !st.dev.IsActive() {
		switch Result(st.outcome.Load()) {
		case Abort:
			return StateAborted
		case Complete:
			return StateCompleted
		}
	}
	return s
}

// Outcome is how the current stream's source ended, Continue while it has
// not.
func (e *Engine) Outcome() Result {
	st := e.cur.Load()
	if st == nil {
		return Continue
	}
	return Result(st.outcome.Load())
}

// PlayAll plays s to the end and closes the stream. It blocks the caller,
// polling every PollInterval, and returns early when ctx is done.
func (e *Engine) PlayAll(ctx context.Context, s seq.Sequence) (Result, error) {
	if err := e.NewStream(s); err != nil {
		return Continue, err
	}
	return e.playOpen(ctx)
}

// PlayAllCallback is PlayAll for a FrameFunc.
func (e *Engine) PlayAllCallback(ctx context.Context, cb FrameFunc) (Result, error) {
	if err := e.NewCallbackStream(cb); err != nil {
		return Continue, err
	}
	return e.playOpen(ctx)
}

func (e *Engine) playOpen(ctx context.Context) (Result, error) {
	if err := e.Start(); err != nil {
		return Continue, errors.Join(err, e.Close())
	}

	poll := time.NewTicker(e.cfg.PollInterval)
	defer poll.Stop()

	for e.IsActive() {
		select {
		case <-ctx.Done():
			out := e.Outcome()
			return out, errors.Join(ctx.Err(), e.Close())
		case <-poll.C:
		}
	}

	out := e.Outcome()
	return out, e.Close()
}
