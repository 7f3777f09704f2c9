// SPDX-License-Identifier: EPL-2.0

package engine

import "time"

// Result is what a fill routine tells the driver after a buffer.
type Result int32

const (
	// Continue asks for another buffer.
	Continue Result = iota
	// Complete ends the stream gracefully once the buffer has played.
	Complete
	// Abort ends the stream because the source ran dry mid-buffer.
	Abort
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Complete:
		return "complete"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// TimeInfo carries the device clocks for the buffer being filled.
type TimeInfo struct {
	// Now is the stream clock when the fill routine was invoked.
	Now time.Duration
	// DAC is when the first frame of the buffer reaches the output.
	DAC time.Duration
}

// FillFunc fills out with frames interleaved frames and returns how many it
// wrote. It runs on the driver's real-time thread and must neither
// allocate nor block. Drivers zero everything past written.
type FillFunc func(out []float32, frames int, t TimeInfo) (written int, r Result)

// StreamConfig is the part of Config a device needs to open a stream.
type StreamConfig struct {
	SampleRate      int
	Channels        int
	FramesPerBuffer int
}

// Device opens output streams.
type Device interface {
	Open(cfg StreamConfig, fill FillFunc) (Stream, error)
}

// Stream is an opened output stream. Start, Stop and Close are called from
// the control context only. IsActive and Time must not block.
//
// IsActive is true from Start until the stream is stopped or the fill
// routine has returned Complete or Abort and the driver has finished with
// the stream.
type Stream interface {
	Start() error
	Stop() error
	Close() error
	IsActive() bool
	Time() time.Duration
}
