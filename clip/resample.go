// SPDX-License-Identifier: EPL-2.0

package clip

import "github.com/ik5/beeptalk/utils"

// Resample converts mono samples from one rate to another with Catmull-Rom
// interpolation. Edge samples are repeated to feed the spline. Equal rates
// return the input unchanged.
//
// When downsampling, a one-pole low-pass runs over the input first to tame
// aliasing.
func Resample(samples []float32, from, to int) []float32 {
	if from == to || len(samples) == 0 || from <= 0 || to <= 0 {
		return samples
	}

	src := samples
	if from > to {
		src = lowPass(samples, 0.5)
	}

	ratio := float64(from) / float64(to)
	n := int(float64(len(src)) / ratio)
	out := make([]float32, n)

	last := len(src) - 1
	at := func(i int) float32 {
		return src[min(max(i, 0), last)]
	}

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		x := float32(pos - float64(idx))
		v := utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), x)
		out[i] = utils.Clamp(v)
	}
	return out
}

func lowPass(samples []float32, alpha float32) []float32 {
	out := make([]float32, len(samples))
	var state float32
	for i, v := range samples {
		state = alpha*v + (1-alpha)*state
		out[i] = state
	}
	return out
}
