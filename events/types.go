// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of event, and also the level at which one
// can select which events to listen to. The type includes both the
// source of the event and its "action" (e.g., MouseDown and MouseUp are
// separate types). Unless otherwise noted, events are Unique, meaning
// they are always delivered individually. Non-Unique events are subject
// to compression when enabled: if the last queued, not yet dispatched
// event is of the same type for the same window, it is replaced by the
// new one instead of appended.
type Types int64

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See [Mouse.Button] for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse moves with no button down.
	// Not unique; Prev is updated during compression.
	MouseMove

	// MouseDrag is sent when the mouse moves with a button down.
	// Start indicates where the button was first pressed.
	// Not unique; Prev is updated during compression.
	MouseDrag

	// DoubleClick is a MouseDown arriving within the double-click
	// interval of the previous press of the same button.
	DoubleClick

	// MouseEnter is when the pointer enters the window.
	MouseEnter

	// MouseLeave is when the pointer leaves the window.
	MouseLeave

	// Scroll is a mouse wheel or trackpad scroll event. Not unique;
	// Delta is integrated during compression.
	Scroll

	// KeyDown is when a key is pressed down, including synthesized
	// presses the modifier tracker emits to reconcile aggregate
	// modifier signals.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// KeyChord is generated for non-modifier key presses and carries a
	// string representation of the full chord, suitable for keyboard
	// command bindings.
	KeyChord

	// ModifiersChanged is emitted by the modifier tracker when, and
	// only when, the externally observable logical modifier bitset
	// differs from the previously emitted one.
	ModifiersChanged

	// TouchStart is when a touch contact begins. Carries the allocated
	// finger id and primary status.
	TouchStart

	// TouchMove is when a touch contact moves. Not unique.
	TouchMove

	// TouchEnd is when a touch contact lifts.
	TouchEnd

	// TouchCancel is when the system cancels an in-progress touch
	// sequence (e.g. a system gesture takes over).
	TouchCancel

	// Magnify is a pinch-to-zoom gesture event.
	Magnify

	// Rotate is a two-finger rotation gesture event.
	Rotate

	// ImeEnabled is sent when the application enables IME input for a
	// window.
	ImeEnabled

	// ImePreedit carries the in-progress composition text. An empty
	// preedit means the composition was dismissed.
	ImePreedit

	// ImeCommit carries finalized composition text handed to the
	// application.
	ImeCommit

	// ImeDisabled is sent when IME input is disabled for a window.
	ImeDisabled

	// WindowResize happens when a window has been resized. Can arrive
	// continuously during interactive resizing. Not unique.
	WindowResize

	// WindowMove happens when a window has been moved.
	WindowMove

	// WindowFocus is when a window gains keyboard focus.
	WindowFocus

	// WindowFocusLost is when a window loses keyboard focus.
	WindowFocusLost

	// WindowScale is when a window's scale factor changes, typically
	// from moving between monitors with different pixel densities.
	WindowScale

	// WindowClose is a request to close the window (user clicked the
	// close button, Alt-F4, etc.). The window is not closed until the
	// application acts on it.
	WindowClose

	// WindowDestroy is the final event for a window: its native handle
	// is gone and its id is about to be retired. No events for the
	// window follow it.
	WindowDestroy

	// WindowPaint is the coalesced redraw-requested event: however
	// many times a redraw was requested for a window within one loop
	// iteration, exactly one WindowPaint is delivered at the end of
	// that iteration.
	WindowPaint

	// DeviceAdded is when an input device is connected.
	DeviceAdded

	// DeviceRemoved is when an input device is disconnected.
	DeviceRemoved

	// Custom is a user-defined event with arbitrary data, typically
	// injected from another thread through the loop proxy.
	Custom

	// TypesN is the number of event types.
	TypesN
)

var typeNames = [TypesN]string{
	"UnknownType",
	"MouseDown",
	"MouseUp",
	"MouseMove",
	"MouseDrag",
	"DoubleClick",
	"MouseEnter",
	"MouseLeave",
	"Scroll",
	"KeyDown",
	"KeyUp",
	"KeyChord",
	"ModifiersChanged",
	"TouchStart",
	"TouchMove",
	"TouchEnd",
	"TouchCancel",
	"Magnify",
	"Rotate",
	"ImeEnabled",
	"ImePreedit",
	"ImeCommit",
	"ImeDisabled",
	"WindowResize",
	"WindowMove",
	"WindowFocus",
	"WindowFocusLost",
	"WindowScale",
	"WindowClose",
	"WindowDestroy",
	"WindowPaint",
	"DeviceAdded",
	"DeviceRemoved",
	"Custom",
}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typeNames[tp]
}

// IsWindow reports whether the type is a window lifecycle event.
func (tp Types) IsWindow() bool {
	return tp >= WindowResize && tp <= WindowPaint
}

// IsIme reports whether the type is an IME event.
func (tp Types) IsIme() bool {
	return tp >= ImeEnabled && tp <= ImeDisabled
}

// IsDevice reports whether the type is a device-level event not tied to
// any window.
func (tp Types) IsDevice() bool {
	return tp == DeviceAdded || tp == DeviceRemoved
}
