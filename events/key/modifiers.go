// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers is a bitset of the logical modifier keys. A logical modifier
// is active when any of its physical locations is held down.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt

	// Meta is the system key: the Windows/Super key on Windows and
	// Linux, Command on macOS.
	Meta
)

// AllModifiers lists the logical modifiers in canonical order:
// Shift, Control, Alt, Meta. Chord strings and [Modifiers.String]
// follow this order.
var AllModifiers = []Modifiers{Shift, Control, Alt, Meta}

var modifierNames = map[Modifiers]string{
	Shift:   "Shift",
	Control: "Control",
	Alt:     "Alt",
	Meta:    "Meta",
}

// SetFlag sets the given modifier bits on or off.
func (mo *Modifiers) SetFlag(on bool, mods ...Modifiers) {
	for _, m := range mods {
		if on {
			*mo |= m
		} else {
			*mo &^= m
		}
	}
}

// HasAll reports whether all of the given modifiers are active.
func (mo Modifiers) HasAll(mods ...Modifiers) bool {
	for _, m := range mods {
		if mo&m == 0 {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the given modifiers is active.
func (mo Modifiers) HasAny(mods ...Modifiers) bool {
	for _, m := range mods {
		if mo&m != 0 {
			return true
		}
	}
	return false
}

// String returns the active modifiers joined by "+", e.g. "Shift+Control",
// in [AllModifiers] order. It is empty when no modifier is active.
func (mo Modifiers) String() string {
	var b strings.Builder
	for _, m := range AllModifiers {
		if mo&m == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(modifierNames[m])
	}
	return b.String()
}

// Locations is a bitset of the physical locations a modifier key can
// occupy. Backends that report only an aggregate "modifier active" flag
// do not distinguish locations; the modifier tracker reconstructs
// per-location transitions from the aggregate signal.
type Locations int32

const (
	Left Locations = 1 << iota
	Right
)

func (lo Locations) String() string {
	switch lo {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Left | Right:
		return "Left+Right"
	}
	return "None"
}
