// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/viper"

	"github.com/ik5/beeptalk/device/headless"
	"github.com/ik5/beeptalk/engine"
	"github.com/ik5/beeptalk/internal/logger"
	"github.com/ik5/beeptalk/seq"
	"github.com/ik5/beeptalk/tone"
)

var ErrUnknownDevice = errors.New("unknown output device")

// deviceOpener returns a device and a function releasing it.
type deviceOpener func() (engine.Device, func() error, error)

// devices lists the backends compiled in. Hardware backends add themselves
// from build-tagged files.
var devices = map[string]deviceOpener{
	"headless": func() (engine.Device, func() error, error) {
		return headless.New(), func() error { return nil }, nil
	},
}

func deviceNames() []string {
	return slices.Sorted(maps.Keys(devices))
}

func openDevice(name string) (engine.Device, func() error, error) {
	open, ok := devices[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w %q, have %v", ErrUnknownDevice, name, deviceNames())
	}
	return open()
}

// newEngine builds an engine on the configured device.
func newEngine() (*engine.Engine, func() error, error) {
	dev, release, err := openDevice(viper.GetString(keyDevice))
	if err != nil {
		return nil, nil, err
	}
	e := engine.New(dev,
		engine.WithSampleRate(viper.GetInt(keyRate)),
		engine.WithChannels(viper.GetInt(keyChannels)),
		engine.WithFramesPerBuffer(viper.GetInt(keyFrames)),
		engine.WithLogger(logger.DefaultLogger),
	)
	return e, release, nil
}

// newBuilder ties tone codes to the configured rate, so a code is hertz
// times 100.
func newBuilder() *tone.Builder {
	return tone.NewBuilder(tone.FromSampleRate(viper.GetInt(keyRate)))
}

// signalContext is cancelled on interrupt.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// play runs s to its end on a fresh engine.
func play(parent context.Context, s seq.Sequence) error {
	e, release, err := newEngine()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(parent)
	defer cancel()

	result, err := e.PlayAll(ctx, s)
	err = errors.Join(err, release())
	if err != nil {
		return err
	}
	logger.Debug("playback finished", "result", result)
	return nil
}
