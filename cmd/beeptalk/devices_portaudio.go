// SPDX-License-Identifier: EPL-2.0

//go:build portaudio

package main

import (
	"github.com/ik5/beeptalk/device/portaudio"
	"github.com/ik5/beeptalk/engine"
)

func init() {
	devices["portaudio"] = func() (engine.Device, func() error, error) {
		d, err := portaudio.New()
		if err != nil {
			return nil, nil, err
		}
		return d, d.Close, nil
	}
}
