// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync"

	"github.com/ik5/beeptalk/seq"
)

// Shared is a sequence slot the control context can replace while a stream
// plays it. The fill routine only ever tries the lock; when the control
// context holds it the buffer is played as silence.
type Shared struct {
	mu sync.Mutex
	s  seq.Sequence
}

// NewShared returns a slot holding s. s may be nil for silence.
func NewShared(s seq.Sequence) *Shared {
	return &Shared{s: s}
}

// Swap installs s and returns the previous sequence.
func (sh *Shared) Swap(s seq.Sequence) seq.Sequence {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	old := sh.s
	sh.s = s
	return old
}

// Update runs fn with the current sequence while holding the lock and
// installs what it returns. fn runs in the control context, so it may
// allocate.
func (sh *Shared) Update(fn func(cur seq.Sequence) seq.Sequence) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.s = fn(sh.s)
}
