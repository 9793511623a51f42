// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventmgr turns the raw signals a platform backend observes
// into canonical events. The [Mgr] is the per-window ingestion surface:
// backends call its methods from the loop thread, and it maintains the
// derived state (modifier locations, touch identities, IME composition)
// needed to make the translation correct, synthesizing additional
// events where the raw signal is incomplete.
package eventmgr

import (
	"image"
	"time"

	"github.com/windkit/wind/dpi"
	"github.com/windkit/wind/events"
	"github.com/windkit/wind/events/key"
)

// Mgr manages the event construction and sending process for its
// parent window. It caches state as needed to generate derived events
// such as drags and double clicks.
type Mgr struct {

	// Win is the id of the parent window, stamped on every event.
	Win events.WindowID

	// Send is the sink all constructed events go into, normally the
	// loop's Enqueue. Must be set before use.
	Send func(ev events.Event)

	// Mods tracks logical modifier state across partial signals.
	Mods ModTracker

	// Pointer tracks touch contact identities and primary status.
	Pointer PointerTracker

	// Ime is the input-method composition machine.
	Ime ImeMachine

	// DoubleClickInterval is the maximum interval between two presses
	// of the same button to count as a double click.
	DoubleClickInterval time.Duration

	// ScrollWheelSpeed scales scroll deltas, in pixels per wheel step.
	ScrollWheelSpeed float32

	// Last caches the most recent values needed to derive events.
	Last struct {
		MouseClickTime time.Time
		MouseMoveTime  time.Time
		MousePos       image.Point
		MouseButton    events.Buttons
		MouseButtonPos image.Point
		MouseAction    events.Types
		Key            key.Codes
	}
}

// Init wires the manager to its window and sink and applies defaults.
func (em *Mgr) Init(win events.WindowID, send func(ev events.Event)) {
	em.Win = win
	em.Send = send
	em.Ime.Win = win
	em.Ime.Send = em.send
	if em.DoubleClickInterval == 0 {
		em.DoubleClickInterval = 500 * time.Millisecond
	}
	if em.ScrollWheelSpeed == 0 {
		em.ScrollWheelSpeed = 1
	}
}

func (em *Mgr) send(ev events.Event) {
	if ev.Window() == 0 {
		ev.SetWindow(em.Win)
	}
	ev.Init()
	em.Send(ev)
}

// Key processes a basic physical key transition and sends the
// resulting events: the key event itself (tentative while IME is
// composing), a ModifiersChanged if a modifier location flipped, and a
// KeyChord for command-like presses.
func (em *Mgr) Key(typ events.Types, rn rune, code key.Codes, mods key.Modifiers) {
	press := typ == events.KeyDown
	em.Last.Key = code

	if code.IsModifier() {
		ev := events.NewKey(typ, rn, code, mods)
		em.send(ev)
		if ch := em.Mods.ObserveKey(code, press); ch != nil {
			em.send(ch)
		}
		return
	}

	if !press && em.Ime.SuppressKeyUp() {
		// backend replayed the key-up of a committed cycle with the
		// original untransformed text
		return
	}

	ev := events.NewKey(typ, rn, code, mods)
	if rn > 0 && rn >= ' ' {
		ev.Text = string(rn)
	}
	if press && em.Ime.Enabled() {
		serial := em.Ime.ObserveKeyDown()
		ev.Serial = serial
		em.send(ev)
		em.Ime.TrackPending(serial, ev.Text, ev)
	} else {
		em.send(ev)
	}

	if press && (mods.HasAny(key.Control, key.Meta) || code == key.CodeTab) {
		em.KeyChord(rn, code, mods)
	}
}

// KeyChord sends a KeyChord event with the given values; no further
// processing is done on these.
func (em *Mgr) KeyChord(rn rune, code key.Codes, mods key.Modifiers) {
	em.send(events.NewKey(events.KeyChord, rn, code, mods))
}

// FlagsChanged processes an authoritative aggregate modifier bitset
// delivered alongside another event (macOS flags-changed), sending any
// key transitions needed to reconcile the tracked per-location state
// plus at most one ModifiersChanged.
func (em *Mgr) FlagsChanged(mods key.Modifiers) {
	for _, ev := range em.Mods.ObserveAggregate(mods) {
		em.send(ev)
	}
}

// MouseButton creates and sends a mouse button event, upgrading a
// press to DoubleClick when it lands within the double-click interval
// of the previous press.
func (em *Mgr) MouseButton(typ events.Types, but events.Buttons, where image.Point, mods key.Modifiers) {
	ev := events.NewMouse(typ, but, where, mods)
	em.Last.MouseButton = but
	em.Last.MouseAction = typ
	em.Last.MousePos = where
	if typ == events.MouseDown {
		em.Last.MouseButtonPos = where
		interval := time.Since(em.Last.MouseClickTime)
		if interval < em.DoubleClickInterval {
			ev.Typ = events.DoubleClick
		}
	}
	em.send(ev)
	if typ == events.MouseDown {
		em.Last.MouseClickTime = ev.Time()
		em.Last.MouseMoveTime = ev.Time()
	}
}

// MouseMove creates and sends a mouse move or drag event depending on
// whether a button is down.
func (em *Mgr) MouseMove(where image.Point) {
	var ev *events.Mouse
	if em.Last.MouseAction == events.MouseDown {
		ev = events.NewMouseMove(events.MouseDrag, em.Last.MouseButton, where, em.Last.MousePos, em.Mods.Active())
		ev.Start = em.Last.MouseButtonPos
	} else {
		ev = events.NewMouseMove(events.MouseMove, events.NoButton, where, em.Last.MousePos, em.Mods.Active())
	}
	em.send(ev)
	em.Last.MouseMoveTime = ev.Time()
	em.Last.MousePos = where
}

// MouseEnter and MouseLeave report the pointer crossing the window
// boundary.
func (em *Mgr) MouseEnter(where image.Point) {
	em.Last.MousePos = where
	em.send(events.NewMouse(events.MouseEnter, events.NoButton, where, em.Mods.Active()))
}

func (em *Mgr) MouseLeave() {
	em.send(events.NewMouse(events.MouseLeave, events.NoButton, em.Last.MousePos, em.Mods.Active()))
}

// Scroll creates and sends a scroll event with the delta scaled by
// ScrollWheelSpeed.
func (em *Mgr) Scroll(where image.Point, delta dpi.Vector) {
	em.send(events.NewScroll(where, delta.MulScalar(em.ScrollWheelSpeed), em.Mods.Active()))
}

// TouchStart begins tracking a native touch contact and sends a
// TouchStart event with its allocated finger identity.
func (em *Mgr) TouchStart(native int64, where image.Point) {
	finger, primary := em.Pointer.Begin(native, where)
	em.send(events.NewTouch(events.TouchStart, finger, primary, where))
}

// TouchMove sends a TouchMove for a tracked contact; untracked native
// ids are ignored.
func (em *Mgr) TouchMove(native int64, where image.Point) {
	finger, primary, ok := em.Pointer.Update(native, where)
	if !ok {
		return
	}
	em.send(events.NewTouch(events.TouchMove, finger, primary, where))
}

// TouchEnd retires a tracked contact and sends a TouchEnd; untracked
// native ids are ignored.
func (em *Mgr) TouchEnd(native int64, where image.Point) {
	finger, primary, ok := em.Pointer.End(native)
	if !ok {
		return
	}
	em.send(events.NewTouch(events.TouchEnd, finger, primary, where))
}

// TouchCancel retires a tracked contact with a TouchCancel event, for
// sequences taken over by the system.
func (em *Mgr) TouchCancel(native int64, where image.Point) {
	finger, primary, ok := em.Pointer.End(native)
	if !ok {
		return
	}
	em.send(events.NewTouch(events.TouchCancel, finger, primary, where))
}

// Magnify sends a pinch gesture step.
func (em *Mgr) Magnify(delta float32, where image.Point) {
	em.send(events.NewMagnify(delta, where))
}

// Rotate sends a rotation gesture step.
func (em *Mgr) Rotate(rotation float32, where image.Point) {
	em.send(events.NewRotate(rotation, where))
}

// Resize reports a new client area size.
func (em *Mgr) Resize(size dpi.PhysicalSize) {
	em.send(events.NewWindowResize(em.Win, size))
}

// Move reports a new window position.
func (em *Mgr) Move(pos dpi.PhysicalPosition) {
	em.send(events.NewWindowMove(em.Win, pos))
}

// Focus reports a focus change.
func (em *Mgr) Focus(focused bool) {
	if focused {
		em.send(events.NewWindowEvent(events.WindowFocus, em.Win))
	} else {
		em.send(events.NewWindowEvent(events.WindowFocusLost, em.Win))
	}
}

// ScaleChanged reports a new scale factor with the suggested size;
// invalid scale factors are dropped.
func (em *Mgr) ScaleChanged(scale float32, size dpi.PhysicalSize) {
	if !dpi.ValidScaleFactor(scale) {
		return
	}
	em.send(events.NewWindowScale(em.Win, scale, size))
}

// CloseReq reports a user request to close the window.
func (em *Mgr) CloseReq() {
	em.send(events.NewWindowEvent(events.WindowClose, em.Win))
}
