// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/windkit/wind/dpi"
)

// WindowEvent is a window lifecycle event with no payload beyond the
// window id: close request, destroy, focus gain/loss, paint.
type WindowEvent struct {
	Base
}

// NewWindowEvent returns a new payload-free window lifecycle event.
func NewWindowEvent(typ Types, win WindowID) *WindowEvent {
	ev := &WindowEvent{}
	ev.Typ = typ
	if typ != WindowPaint {
		ev.SetUnique()
	}
	ev.Win = win
	return ev
}

// WindowResizeEvent reports the new size of a window's client area in
// physical pixels.
type WindowResizeEvent struct {
	Base

	// Size is the new client area size.
	Size dpi.PhysicalSize
}

// NewWindowResize returns a new resize event.
// Not unique: compressed during interactive resizing.
func NewWindowResize(win WindowID, size dpi.PhysicalSize) *WindowResizeEvent {
	ev := &WindowResizeEvent{}
	ev.Typ = WindowResize
	ev.Win = win
	ev.Size = size
	return ev
}

func (ev *WindowResizeEvent) String() string {
	return fmt.Sprintf("%v{Win: %v, Size: %v, Time: %v}", ev.Type(), ev.Win, ev.Size, ev.Time().Format("04:05"))
}

// WindowMoveEvent reports the new position of a window in physical
// pixels.
type WindowMoveEvent struct {
	Base

	// WinPos is the new window position.
	WinPos dpi.PhysicalPosition
}

// NewWindowMove returns a new window move event.
func NewWindowMove(win WindowID, pos dpi.PhysicalPosition) *WindowMoveEvent {
	ev := &WindowMoveEvent{}
	ev.Typ = WindowMove
	ev.Win = win
	ev.WinPos = pos
	return ev
}

func (ev *WindowMoveEvent) String() string {
	return fmt.Sprintf("%v{Win: %v, Pos: %v, Time: %v}", ev.Type(), ev.Win, ev.WinPos, ev.Time().Format("04:05"))
}

// WindowScaleEvent reports a change in a window's scale factor, along
// with the suggested new client area size in physical pixels.
type WindowScaleEvent struct {
	Base

	// Scale is the new scale factor.
	Scale float32

	// Size is the suggested new client area size.
	Size dpi.PhysicalSize
}

// NewWindowScale returns a new scale factor change event.
func NewWindowScale(win WindowID, scale float32, size dpi.PhysicalSize) *WindowScaleEvent {
	ev := &WindowScaleEvent{}
	ev.Typ = WindowScale
	ev.SetUnique()
	ev.Win = win
	ev.Scale = scale
	ev.Size = size
	return ev
}

func (ev *WindowScaleEvent) String() string {
	return fmt.Sprintf("%v{Win: %v, Scale: %v, Size: %v, Time: %v}", ev.Type(), ev.Win, ev.Scale, ev.Size, ev.Time().Format("04:05"))
}
