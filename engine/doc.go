// SPDX-License-Identifier: EPL-2.0

// Package engine plays sample sequences on an audio output device.
//
// An Engine holds at most one stream. The device calls the stream's fill
// routine once per buffer on its own real-time thread; the routine pulls
// one sample per frame and writes it to every channel, without allocating
// or blocking. Opening a new stream closes the previous one, so changing
// what plays means building a new sequence rather than touching the live
// one. Shared is the exception: a slot the control context may swap under
// a lock the fill routine only ever tries.
//
// A stream moves through
//
//	Closed -> Open -> Running -> (Aborted | Completed) -> Closed
//
// Sequence streams abort when the sequence runs out mid-buffer, callback
// streams complete when the callback declines a frame. Either way the
// outcome is available from Outcome and from PlayAll.
//
// Devices live in the device/ packages: portaudio and oto for real
// hardware, headless for tests and offline runs.
package engine
