// SPDX-License-Identifier: EPL-2.0

// Package utils has the sample conversions shared by the renderers, the
// decoders and the output devices.
package utils

// Clamp limits x to [-1,1].
func Clamp(x float32) float32 {
	return min(max(x, -1), 1)
}

// Float32ToInt16 converts a sample in [-1,1] to 16-bit PCM, clamping first.
// Both ends map to ±32767 so the scale is symmetric.
func Float32ToInt16(x float32) int16 {
	return int16(Clamp(x) * 32767)
}

// Int16ToFloat32 converts 16-bit PCM to [-1,1). -32768 maps to exactly -1.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768
}

// CubicInterpolate evaluates the Catmull-Rom spline through y0..y3 at x,
// where x in [0,1] runs from y1 to y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := 0.5 * (y2 - y0)
	return ((a*x+b)*x+c)*x + y1
}
