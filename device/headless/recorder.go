// SPDX-License-Identifier: EPL-2.0

package headless

import "sync"

// Recorder collects the first channel of every tapped buffer.
type Recorder struct {
	mu       sync.Mutex
	channels int
	samples  []float32
}

// NewRecorder returns a Recorder for buffers interleaved over channels.
func NewRecorder(channels int) *Recorder {
	return &Recorder{channels: max(channels, 1)}
}

// Tap is the TapFunc to install with WithTap.
func (r *Recorder) Tap(buf []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < len(buf); i += r.channels {
		r.samples = append(r.samples, buf[i])
	}
}

// Samples returns a copy of what was recorded.
func (r *Recorder) Samples() []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float32, len(r.samples))
	copy(out, r.samples)
	return out
}
