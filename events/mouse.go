// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"github.com/windkit/wind/dpi"
	"github.com/windkit/wind/events/key"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
	ButtonsN
)

var buttonNames = [ButtonsN]string{"NoButton", "Left", "Middle", "Right"}

func (bt Buttons) String() string {
	if bt < 0 || bt >= ButtonsN {
		return "NoButton"
	}
	return buttonNames[bt]
}

// Mouse is a basic mouse event for all mouse events except Scroll.
type Mouse struct {
	Base

	// Button is the mouse button involved, NoButton for pure moves.
	Button Buttons
}

// NewMouse returns a new basic mouse event (down, up, double-click,
// enter, leave) with the given values.
func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	return ev
}

// NewMouseMove returns a new mouse move or drag event.
// Not unique: subject to compression with Prev preserved.
func NewMouseMove(typ Types, but Buttons, where, prev image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Mods = mods
	return ev
}

func (ev *Mouse) HasPos() bool {
	return true
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods, ev.Time().Format("04:05"))
}

// MouseScroll is for mouse and trackpad scrolling.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in pixel units.
	Delta dpi.Vector
}

// NewScroll returns a new scroll event. Not unique: compression
// integrates the deltas.
func NewScroll(where image.Point, delta dpi.Vector, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.Where = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods, ev.Time().Format("04:05"))
}
