// SPDX-License-Identifier: EPL-2.0

package seq

// Table is a fixed buffer of samples, usually exactly one period of a
// waveform, read through a [front, back) cursor.
//
// The buffer is never written after construction, so clones share it and
// only copy the cursor.
type Table struct {
	data  []float32
	front int
	back  int
}

// NewTable wraps samples. The slice must not be modified afterwards.
func NewTable(samples []float32) *Table {
	return &Table{data: samples, back: len(samples)}
}

// Samples returns the whole underlying buffer regardless of the cursor.
// Callers must not modify it.
func (t *Table) Samples() []float32 { return t.data }

// Len returns the number of samples left between the cursors.
func (t *Table) Len() int { return t.back - t.front }

func (t *Table) Next() (float32, bool) {
	if t.front >= t.back {
		return 0, false
	}
	v := t.data[t.front]
	t.front++
	return v, true
}

func (t *Table) NextBack() (float32, bool) {
	if t.front >= t.back {
		return 0, false
	}
	t.back--
	return t.data[t.back], true
}

func (t *Table) Clone() *Table {
	c := *t
	return &c
}

func (t *Table) CopyFrom(src *Table) { *t = *src }
