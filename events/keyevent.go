// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/windkit/wind/events/key"
)

// Key is a keyboard event. KeyDown and KeyUp report each physical
// transition; KeyChord is generated for non-modifier presses and adds
// the chord string.
type Key struct {
	Base

	// Rune is the character the key produces under the active layout,
	// 0 if none.
	Rune rune

	// Code is the physical key code.
	Code key.Codes

	// Text is the text payload for the application, if any. While IME
	// is enabled this is tentative: the IME machine may revoke it in
	// favor of a composed commit for the same key cycle.
	Text string

	// Repeat indicates an auto-repeated press.
	Repeat bool

	// Serial is the key-cycle serial the IME machine uses to correlate
	// this event with marked-text and commit signals. Zero when IME is
	// disabled.
	Serial uint64
}

// NewKey returns a new key event of the given type.
func NewKey(typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Rune = rn
	ev.Code = code
	ev.Mods = mods
	return ev
}

// Chord returns the chord string for this event, e.g. "Control+S".
func (ev *Key) Chord() key.Chord {
	return key.NewChord(ev.Rune, ev.Code, ev.Mods)
}

func (ev *Key) String() string {
	if ev.Rune > 0 {
		return fmt.Sprintf("%v{Chord: %v, Rune: %d, Hex: %X, Mods: %v, Time: %v}", ev.Type(), ev.Chord(), ev.Rune, ev.Rune, ev.Mods, ev.Time().Format("04:05"))
	}
	return fmt.Sprintf("%v{Code: %v, Mods: %v, Time: %v}", ev.Type(), ev.Code, ev.Mods, ev.Time().Format("04:05"))
}

// KeyModifiers is a ModifiersChanged event, reporting the new logical
// modifier bitset. Emitted by the modifier tracker only when the bitset
// differs from the previously emitted one.
type KeyModifiers struct {
	Base
}

// NewModifiers returns a new ModifiersChanged event carrying the given
// bitset.
func NewModifiers(mods key.Modifiers) *KeyModifiers {
	ev := &KeyModifiers{}
	ev.Typ = ModifiersChanged
	ev.SetUnique()
	ev.Mods = mods
	return ev
}

func (ev *KeyModifiers) String() string {
	return fmt.Sprintf("%v{Mods: %v, Time: %v}", ev.Type(), ev.Mods, ev.Time().Format("04:05"))
}
