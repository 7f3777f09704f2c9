// SPDX-License-Identifier: EPL-2.0

//go:build oto

package main

import (
	"github.com/ik5/beeptalk/device/oto"
	"github.com/ik5/beeptalk/engine"
)

func init() {
	devices["oto"] = func() (engine.Device, func() error, error) {
		return oto.New(0), func() error { return nil }, nil
	}
}
