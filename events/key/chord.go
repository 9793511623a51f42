// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Chord is a string representation of a key press with modifiers, of the
// form "Control+A" or "Shift+Alt+ReturnEnter", suitable for use as a map
// key when binding keyboard commands. Modifiers appear in [AllModifiers]
// order; the final element is the key itself, as a rune for printable
// keys and the [Codes] name otherwise.
type Chord string

// NewChord encodes a chord string from the given rune, code, and
// modifiers. The rune is preferred when printable; otherwise the code
// name is used.
func NewChord(rn rune, code Codes, mods Modifiers) Chord {
	var b strings.Builder
	if ms := mods.String(); ms != "" {
		b.WriteString(ms)
		b.WriteByte('+')
	}
	if rn > 0 && unicode.IsPrint(rn) && rn != ' ' {
		if mods.HasAny(Shift, Control, Alt, Meta) {
			rn = unicode.ToUpper(rn)
		}
		b.WriteRune(rn)
	} else {
		b.WriteString(code.String())
	}
	return Chord(b.String())
}

func (ch Chord) String() string {
	return string(ch)
}

// Decode parses the chord back into rune, code, and modifiers. It is
// the inverse of [NewChord] for chords NewChord produces.
func (ch Chord) Decode() (rn rune, code Codes, mods Modifiers, err error) {
	parts := strings.Split(string(ch), "+")
	key := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		found := false
		for m, nm := range modifierNames {
			if p == nm {
				mods |= m
				found = true
				break
			}
		}
		if !found {
			return 0, CodeUnknown, mods, fmt.Errorf("key.Chord: unknown modifier %q in %q", p, ch)
		}
	}
	rns := []rune(key)
	if len(rns) == 1 {
		rn = rns[0]
		for c, r := range CodeRuneMap {
			if r == unicode.ToLower(rn) {
				code = c
				break
			}
		}
		return rn, code, mods, nil
	}
	for c, nm := range codeNames {
		if nm == key {
			return 0, c, mods, nil
		}
	}
	return 0, CodeUnknown, mods, fmt.Errorf("key.Chord: unknown key %q in %q", key, ch)
}
