// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"github.com/windkit/wind/dpi"
	"github.com/windkit/wind/eventmgr"
	"github.com/windkit/wind/events"
)

// Window is the [system.Window] implementation for the offscreen
// platform. Raw input is injected through EvMgr the same way a native
// backend feeds its event manager. All methods are loop thread only.
type Window struct {
	app *App

	// EvMgr is the event manager raw signals are injected into.
	EvMgr eventmgr.Mgr

	id     events.WindowID
	title  string
	size   dpi.PhysicalSize
	scale  float32
	closed bool
}

func (w *Window) ID() events.WindowID {
	return w.id
}

func (w *Window) Name() string {
	return w.title
}

func (w *Window) SetName(name string) {
	w.title = name
}

func (w *Window) Size() dpi.PhysicalSize {
	return w.size
}

func (w *Window) Scale() float32 {
	return w.scale
}

func (w *Window) HasFocus() bool {
	return w.app.Loop.Registry.Focused(w.id)
}

func (w *Window) RequestRedraw() {
	w.app.Loop.RequestRedraw(w.id)
}

func (w *Window) SetImeEnabled(enabled bool) {
	if enabled {
		w.EvMgr.Ime.Enable()
	} else {
		w.EvMgr.Ime.Disable()
	}
}

func (w *Window) ImeEnabled() bool {
	return w.EvMgr.Ime.Enabled()
}

func (w *Window) CloseReq() {
	w.EvMgr.CloseReq()
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.EvMgr.Ime.Disable()
	w.app.Loop.DestroyWindow(w.id)
	w.app.RemoveWindow(w)
}

func (w *Window) IsClosed() bool {
	return w.closed
}

// SetSize changes the simulated client area size, delivering the same
// WindowResize a native backend would.
func (w *Window) SetSize(size dpi.PhysicalSize) {
	w.size = size
	w.EvMgr.Resize(size)
}

// SetScale changes the simulated scale factor, adjusting the physical
// size to preserve the logical size, as moving a window to a monitor
// with a different pixel density does.
func (w *Window) SetScale(scale float32) {
	if !dpi.ValidScaleFactor(scale) {
		return
	}
	logical := w.size.ToLogical(w.scale)
	w.scale = scale
	w.size = logical.ToPhysical(scale)
	w.EvMgr.ScaleChanged(scale, w.size)
}
