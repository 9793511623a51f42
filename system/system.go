// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the contracts between the event core, the
// platform backends, and the application: the [App] and [Window]
// interfaces, the [Handler] callback surface, the [ControlFlow]
// scheduling states, and the error taxonomy.
package system

// TheApp is the current [App]; only one is ever in effect. It is set by
// the active driver's init function.
var TheApp App

// Platforms are all the supported platforms.
type Platforms int32

const (
	// MacOS is a Mac OS machine (aka Darwin).
	MacOS Platforms = iota

	// Linux is a Linux OS machine (X11 or Wayland).
	Linux

	// Windows is a Microsoft Windows machine.
	Windows

	// IOS is an Apple iOS or iPadOS device.
	IOS

	// Android is an Android phone or tablet.
	Android

	// Web is a web browser running the app through WASM.
	Web

	// Offscreen is the headless driver used for testing, and the
	// reference implementation for writing real backends.
	Offscreen

	// PlatformsN is the number of platforms.
	PlatformsN
)

var platformNames = [PlatformsN]string{
	"MacOS", "Linux", "Windows", "IOS", "Android", "Web", "Offscreen",
}

func (p Platforms) String() string {
	if p < 0 || p >= PlatformsN {
		return "Unknown"
	}
	return platformNames[p]
}

// IsMobile returns whether the platform is a single-window platform
// (iOS, Android, or Web).
func (p Platforms) IsMobile() bool {
	return p == IOS || p == Android || p == Web
}
