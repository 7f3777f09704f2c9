// SPDX-License-Identifier: EPL-2.0

package tone

// Config holds the constants that tie abstract frequency codes and
// millisecond durations to sample counts.
type Config struct {
	// PitchConstant is K in period = K / code.
	PitchConstant int
	// LoopAdjust is the number of samples (ticks) per millisecond.
	LoopAdjust int
	// SmoothStep is the per-sample increment of Bookend ramps.
	SmoothStep float32
	// MinPeriod is the shortest period MultiWave still plays. Shorter
	// periods are above the useful range and become silence.
	MinPeriod int
	// MaxTableLen caps the length of a Chord table, which grows with the
	// least common multiple of its periods.
	MaxTableLen int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig matches a 45 kHz tick rate with codes in hundredths of a
// hertz.
func DefaultConfig() Config {
	return Config{
		PitchConstant: 4_500_000,
		LoopAdjust:    45,
		SmoothStep:    0.001,
		MinPeriod:     10,
		MaxTableLen:   1 << 22,
	}
}

// WithPitchConstant sets K.
func WithPitchConstant(k int) Option {
	return func(cfg *Config) {
		if k > 0 {
			cfg.PitchConstant = k
		}
	}
}

// WithLoopAdjust sets the number of ticks per millisecond.
func WithLoopAdjust(ticksPerMilli int) Option {
	return func(cfg *Config) {
		if ticksPerMilli > 0 {
			cfg.LoopAdjust = ticksPerMilli
		}
	}
}

// WithSmoothStep sets the ramp increment used by Bookend.
func WithSmoothStep(step float32) Option {
	return func(cfg *Config) {
		if step > 0 {
			cfg.SmoothStep = step
		}
	}
}

// WithMinPeriod sets the shortest period MultiWave plays.
func WithMinPeriod(period int) Option {
	return func(cfg *Config) {
		if period >= 0 {
			cfg.MinPeriod = period
		}
	}
}

// WithMaxTableLen sets the longest Chord table the builder will allocate.
func WithMaxTableLen(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxTableLen = n
		}
	}
}

// FromSampleRate derives K and LoopAdjust from a device sample rate so that
// a code is exactly hertz*100 and a millisecond is rate/1000 ticks.
func FromSampleRate(rate int) Option {
	return func(cfg *Config) {
		if rate >= 1000 {
			cfg.PitchConstant = rate * 100
			cfg.LoopAdjust = rate / 1000
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
