// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"github.com/windkit/wind/dpi"
	"github.com/windkit/wind/events"
)

// Window is one logical window of the application. All methods must be
// called on the loop thread unless noted otherwise.
type Window interface {

	// ID returns the stable window id minted by the registry at
	// creation.
	ID() events.WindowID

	// Name returns the window name (title).
	Name() string

	// SetName sets the window name (title).
	SetName(name string)

	// Size returns the current client area size in physical pixels.
	Size() dpi.PhysicalSize

	// Scale returns the current scale factor.
	Scale() float32

	// HasFocus reports whether the window currently has keyboard
	// focus. This is per-window state owned by the registry entry and
	// mutated only by the loop thread when processing focus events.
	HasFocus() bool

	// RequestRedraw schedules exactly one WindowPaint event for this
	// window at the end of the current (or next) loop iteration,
	// however many times it is called before then.
	RequestRedraw()

	// SetImeEnabled arms or disarms IME composition for this window.
	// While enabled, composed input arrives as ImePreedit/ImeCommit
	// events and raw character events for composed key cycles are
	// suppressed; while disabled, only raw key events are delivered.
	SetImeEnabled(enabled bool)

	// ImeEnabled reports whether IME composition is armed.
	ImeEnabled() bool

	// CloseReq requests closing the window, delivering a WindowClose
	// event for the application to act on.
	CloseReq()

	// Close destroys the window: remaining queued events for it are
	// still delivered, followed by a final WindowDestroy, after which
	// its id is retired.
	Close()

	// IsClosed reports whether the window has been destroyed.
	IsClosed() bool
}
