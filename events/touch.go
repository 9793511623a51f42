// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Touch is a touch contact event (start, move, end, cancel), carrying
// the stable finger identity allocated by the pointer tracker.
type Touch struct {
	Base

	// Finger is the stable identity of this contact for the duration
	// of its down-move-up sequence.
	Finger FingerID

	// Primary indicates the contact designated authoritative for
	// single-pointer APIs: the first contact of the gesture, sticky
	// until all contacts lift. Mouse pointers are always primary.
	Primary bool
}

// NewTouch returns a new touch event with the given values.
func NewTouch(typ Types, finger FingerID, primary bool, where image.Point) *Touch {
	ev := &Touch{}
	ev.Typ = typ
	if typ != TouchMove {
		ev.SetUnique()
	}
	ev.Finger = finger
	ev.Primary = primary
	ev.Where = where
	return ev
}

func (ev *Touch) HasPos() bool {
	return true
}

func (ev *Touch) String() string {
	return fmt.Sprintf("%v{Finger: %v, Primary: %v, Pos: %v, Time: %v}", ev.Type(), ev.Finger, ev.Primary, ev.Where, ev.Time().Format("04:05"))
}

// TouchMagnify is a pinch gesture event.
type TouchMagnify struct {
	Touch

	// ScaleDelta is the multiplicative zoom change for this step,
	// e.g. 1.1 for a 10% zoom in.
	ScaleDelta float32
}

// NewMagnify returns a new magnify (pinch) gesture event.
func NewMagnify(delta float32, where image.Point) *TouchMagnify {
	ev := &TouchMagnify{}
	ev.Typ = Magnify
	ev.ScaleDelta = delta
	ev.Where = where
	return ev
}

func (ev *TouchMagnify) String() string {
	return fmt.Sprintf("%v{ScaleDelta: %v, Pos: %v, Time: %v}", ev.Type(), ev.ScaleDelta, ev.Where, ev.Time().Format("04:05"))
}

// TouchRotate is a two-finger rotation gesture event.
type TouchRotate struct {
	Touch

	// Rotation is the angular change for this step, in radians,
	// positive counterclockwise.
	Rotation float32
}

// NewRotate returns a new rotation gesture event.
func NewRotate(rotation float32, where image.Point) *TouchRotate {
	ev := &TouchRotate{}
	ev.Typ = Rotate
	ev.Rotation = rotation
	ev.Where = where
	return ev
}

func (ev *TouchRotate) String() string {
	return fmt.Sprintf("%v{Rotation: %v, Pos: %v, Time: %v}", ev.Type(), ev.Rotation, ev.Where, ev.Time().Format("04:05"))
}
