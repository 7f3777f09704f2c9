// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrDevice matches every *DeviceError.
	ErrDevice   = errors.New("audio device error")
	ErrNoStream = errors.New("no open stream")
)

// DeviceError is a failure reported by the device while opening,
// starting, stopping or closing a stream. Nothing is retried.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return "audio device " + e.Op + ": " + e.Err.Error()
}

func (e *DeviceError) Unwrap() []error {
	return []error{ErrDevice, e.Err}
}
