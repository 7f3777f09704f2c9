// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"log/slog"
	"time"

	"github.com/ik5/beeptalk/internal/logger"
)

const (
	DefaultSampleRate      = 44100
	DefaultChannels        = 2
	DefaultFramesPerBuffer = 64
	DefaultPollInterval    = 50 * time.Millisecond
)

// Config is the engine configuration.
type Config struct {
	SampleRate      int
	Channels        int
	FramesPerBuffer int
	// PollInterval is how often PlayAll checks IsActive.
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Option configures an Engine.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		SampleRate:      DefaultSampleRate,
		Channels:        DefaultChannels,
		FramesPerBuffer: DefaultFramesPerBuffer,
		PollInterval:    DefaultPollInterval,
		Logger:          logger.DefaultLogger,
	}
}

func WithSampleRate(rate int) Option {
	return func(cfg *Config) {
		if rate > 0 {
			cfg.SampleRate = rate
		}
	}
}

// WithChannels sets the number of output channels. Every channel carries
// the same mono signal.
func WithChannels(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Channels = n
		}
	}
}

func WithFramesPerBuffer(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.FramesPerBuffer = n
		}
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(cfg *Config) {
		if d > 0 {
			cfg.PollInterval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

func (c Config) stream() StreamConfig {
	return StreamConfig{
		SampleRate:      c.SampleRate,
		Channels:        c.Channels,
		FramesPerBuffer: c.FramesPerBuffer,
	}
}
