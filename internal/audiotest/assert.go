// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireMirror fails unless backward is forward reversed, which is what
// draining a sequence from the back must produce.
func RequireMirror(t testing.TB, forward, backward []float32) {
	t.Helper()

	require.Len(t, backward, len(forward), "forward and backward lengths differ")
	for i := range forward {
		require.Equal(t, forward[i], backward[len(backward)-1-i], "forward index %d", i)
	}
}

// RequireInRange fails if any sample is outside [-1,1].
func RequireInRange(t testing.TB, samples []float32) {
	t.Helper()

	for i, v := range samples {
		require.True(t, v >= -1 && v <= 1, "sample %d out of range: %v", i, v)
	}
}
