// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver activates the system driver for the current platform.
// Importing it sets [system.TheApp]. Native backends register here
// behind build tags as they are added; the offscreen driver is the
// fallback and serves headless runs and tests.
package driver

import (
	"github.com/windkit/wind/system/driver/offscreen"
)

func init() {
	offscreen.Init()
}
