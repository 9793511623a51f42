// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"github.com/windkit/wind/dpi"
	"github.com/windkit/wind/events"
)

// App represents one platform backend: it creates windows, owns the
// event loop, and normalizes the platform's raw events into the
// canonical algebra. Exactly one App is in effect per process.
type App interface {

	// Platform returns the platform type, which can be used for
	// conditionalizing behavior.
	Platform() Platforms

	// Name is the overall name of the application.
	Name() string

	// SetName sets the application name.
	SetName(name string)

	// NWindows returns the number of windows open for this app.
	NWindows() int

	// Window returns the given window in the list of windows, in order
	// of creation; nil for an invalid index.
	Window(win int) Window

	// WindowByName returns the window with the given name, or nil if
	// none.
	WindowByName(name string) Window

	// WindowByID returns the window with the given id, or nil if none.
	WindowByID(id events.WindowID) Window

	// NewWindow returns a new [Window]. A nil opts is valid and means
	// the default option values. Fails with an [*OSError] if the
	// platform could not create the native window.
	NewWindow(opts *NewWindowOptions) (Window, error)

	// RemoveWindow removes the given Window from the app's list of
	// windows. It does not close it; see [Window.Close] for that.
	RemoveWindow(win Window)

	// Run runs the event loop with the given handler, blocking until
	// the application exits. It returns nil on a clean exit, an
	// [*ExitError] for a nonzero exit code, and [ErrRecreation] if the
	// loop has already run to completion.
	Run(h Handler) error

	// Proxy returns a thread-safe handle for waking the loop or
	// injecting user events from other threads. Every call returns a
	// handle to the same loop; handles stay valid (as no-ops) after
	// the loop is destroyed.
	Proxy() Proxy

	// Quit requests a clean exit of the event loop with code 0.
	// Callable from any thread.
	Quit()
}

// Proxy is a thread-safe handle to a running event loop. It is the only
// supported way for non-loop threads to interact with the loop.
type Proxy interface {

	// WakeUp forces the loop to run an iteration. Callable from any
	// thread, never blocks; multiple calls before the loop wakes
	// collapse into a single ProxyWakeUp callback. After the loop is
	// destroyed it is a no-op.
	WakeUp()

	// Send injects a typed user value, delivered on the loop thread
	// via [UserHandler.UserEvent] (or dropped if the handler does not
	// implement it). Returns [ErrLoopClosed] after the loop is
	// destroyed so the caller can reclaim the value.
	Send(data any) error
}

// NewWindowOptions are the options for creating a new window.
type NewWindowOptions struct {

	// Title is the window title.
	Title string

	// Size is the requested client area size in logical pixels.
	Size dpi.LogicalSize

	// Pos is the requested position in physical pixels; zero means
	// the platform chooses.
	Pos dpi.PhysicalPosition
}
