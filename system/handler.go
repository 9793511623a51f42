// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "github.com/windkit/wind/events"

// Handler is the application-facing callback surface the event loop
// invokes into. All methods are called on the loop thread, in the
// deterministic per-iteration order documented on [Loop]: NewEvents,
// then queued window and device events, then AboutToWait, then one
// WindowPaint event per window with a pending redraw.
//
// Embed [HandlerBase] to only implement the methods you need.
type Handler interface {

	// NewEvents is called at the start of every iteration with the
	// reason the iteration is running.
	NewEvents(cause StartCause)

	// CanCreateSurfaces is called once, before the first Resumed, when
	// it becomes valid to create rendering surfaces.
	CanCreateSurfaces()

	// Resumed is called when the application returns to the foreground
	// and surfaces may be (re)created. Always called at least once
	// after CanCreateSurfaces.
	Resumed()

	// Suspended is called when the application is moved to the
	// background on platforms that reclaim surfaces (iOS, Android,
	// Web).
	Suspended()

	// DestroySurfaces is called when rendering surfaces must be
	// released before the application is suspended or the loop exits.
	DestroySurfaces()

	// MemoryWarning is called when the OS reports memory pressure.
	MemoryWarning()

	// ProxyWakeUp is called at most once per iteration when one or
	// more proxy WakeUp calls arrived since the last iteration.
	ProxyWakeUp()

	// WindowEvent delivers one canonical event targeted at a window.
	WindowEvent(win events.WindowID, ev events.Event)

	// DeviceEvent delivers one canonical event from an input device
	// not tied to any window.
	DeviceEvent(dev events.DeviceID, ev events.Event)

	// AboutToWait is called after all queued events of an iteration
	// have been delivered, before pending redraws, and before the loop
	// blocks for the next wake.
	AboutToWait()

	// LoopExiting is called exactly once, after the final iteration,
	// when the loop is shutting down. No callbacks follow it.
	LoopExiting()
}

// UserHandler is an optional extension interface: a [Handler] that also
// implements it receives the typed values sent through [Proxy.Send],
// in FIFO order, before ProxyWakeUp for the same batch.
type UserHandler interface {

	// UserEvent delivers one value sent through the loop proxy.
	UserEvent(data any)
}

// HandlerBase is a no-op implementation of [Handler] for embedding, so
// applications only implement the callbacks they care about.
type HandlerBase struct{}

func (HandlerBase) NewEvents(cause StartCause)                        {}
func (HandlerBase) CanCreateSurfaces()                                {}
func (HandlerBase) Resumed()                                          {}
func (HandlerBase) Suspended()                                        {}
func (HandlerBase) DestroySurfaces()                                  {}
func (HandlerBase) MemoryWarning()                                    {}
func (HandlerBase) ProxyWakeUp()                                      {}
func (HandlerBase) WindowEvent(win events.WindowID, ev events.Event)  {}
func (HandlerBase) DeviceEvent(dev events.DeviceID, ev events.Event)  {}
func (HandlerBase) AboutToWait()                                      {}
func (HandlerBase) LoopExiting()                                      {}
