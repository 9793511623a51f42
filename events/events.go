// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the canonical, backend-independent event
// algebra. Every backend translates its raw platform events (X11 wire
// events, Wayland protocol objects, Win32 messages, NSEvents, DOM
// callbacks) into these types before they reach the application.
package events

import (
	"fmt"
	"image"
	"time"

	"github.com/windkit/wind/events/key"
)

// WindowID is the opaque, totally ordered identifier for a logical
// window. It is minted once by the registry from a backend-native
// handle at window creation and is stable for the window's lifetime.
// The zero value means "no window".
type WindowID uint64

func (w WindowID) String() string {
	return fmt.Sprintf("Window(%d)", uint64(w))
}

// DeviceID is the opaque identifier for an input device. The zero value
// means "no device" or "unknown device".
type DeviceID uint64

func (d DeviceID) String() string {
	return fmt.Sprintf("Device(%d)", uint64(d))
}

// FingerID is the stable identity of one touch contact, allocated on
// touch-down and retired on touch-up or cancel. The zero value is never
// allocated.
type FingerID uint64

func (f FingerID) String() string {
	return fmt.Sprintf("Finger(%d)", uint64(f))
}

// Event is the interface that all canonical events implement. Most
// events embed [Base] and only set the fields relevant to them.
type Event interface {
	fmt.Stringer

	// AsBase returns the underlying [Base] for direct field access.
	AsBase() *Base

	// Type returns the event type.
	Type() Types

	// Init sets the event timestamp to now. Backends call it just
	// before sending.
	Init()

	// Time returns the time the event was generated.
	Time() time.Time

	// IsUnique reports whether the event must never be compressed
	// with a like event in the queue.
	IsUnique() bool

	// SetUnique marks the event as not subject to compression.
	SetUnique()

	// IsHandled reports whether a listener has marked the event handled.
	IsHandled() bool

	// SetHandled marks the event as handled, stopping propagation
	// through [Listeners].
	SetHandled()

	// IsCanceled reports whether delivery of the event has been
	// revoked; the dispatcher drops canceled events silently. Used by
	// the IME machine to retract a tentatively queued raw character.
	IsCanceled() bool

	// SetCanceled revokes delivery of the event.
	SetCanceled()

	// HasPos reports whether the event carries a meaningful position.
	HasPos() bool

	// Pos returns the event position in window coordinates (physical
	// pixels), or the zero point if HasPos is false.
	Pos() image.Point

	// Window returns the id of the window the event belongs to, or 0
	// for device and loop-level events.
	Window() WindowID

	// SetWindow sets the target window id.
	SetWindow(id WindowID)

	// Device returns the id of the input device the event came from,
	// or 0 if unknown.
	Device() DeviceID

	// SetDevice sets the source device id.
	SetDevice(id DeviceID)

	// Modifiers returns the logical modifier state at the time of the
	// event.
	Modifiers() key.Modifiers
}

// EventFlags encode boolean event properties.
type EventFlags int64

const (
	// Handled indicates that the event has been handled.
	Handled EventFlags = 1 << iota

	// Unique indicates that the event is never compressed with
	// like events.
	Unique

	// Canceled indicates that delivery of the event has been revoked.
	Canceled
)

// Base is the base type for events, providing the core functionality
// and fields shared by most event types. Concrete events embed it.
type Base struct {

	// Typ is the type of the event.
	Typ Types

	// Flags are the boolean event properties.
	Flags EventFlags

	// Win is the id of the window the event belongs to (0 for none).
	Win WindowID

	// Dev is the id of the source device (0 for unknown).
	Dev DeviceID

	// GenTime is the time the event was generated.
	GenTime time.Time

	// Where is the event position in window coordinates.
	Where image.Point

	// Prev is the previous position for move events, updated during
	// compression.
	Prev image.Point

	// Start is the starting position for drag sequences.
	Start image.Point

	// Mods is the logical modifier state at the time of the event.
	Mods key.Modifiers
}

func (ev *Base) AsBase() *Base {
	return ev
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) IsUnique() bool {
	return ev.Flags&Unique != 0
}

func (ev *Base) SetUnique() {
	ev.Flags |= Unique
}

func (ev *Base) IsHandled() bool {
	return ev.Flags&Handled != 0
}

func (ev *Base) SetHandled() {
	ev.Flags |= Handled
}

func (ev *Base) IsCanceled() bool {
	return ev.Flags&Canceled != 0
}

func (ev *Base) SetCanceled() {
	ev.Flags |= Canceled
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) Window() WindowID {
	return ev.Win
}

func (ev *Base) SetWindow(id WindowID) {
	ev.Win = id
}

func (ev *Base) Device() DeviceID {
	return ev.Dev
}

func (ev *Base) SetDevice(id DeviceID) {
	ev.Dev = id
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

// PrevDelta returns the change in position from Prev to Where.
func (ev *Base) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Win: %v, Time: %v}", ev.Typ, ev.Win, ev.GenTime.Format("04:05"))
}
