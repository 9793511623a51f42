// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Ime is an input-method event: enable/disable notifications, preedit
// (in-progress composition) updates, and commits of finalized text.
type Ime struct {
	Base

	// Preedit is the in-progress composition text for ImePreedit
	// events; empty when the composition is dismissed.
	Preedit string

	// Caret is the byte offset of the caret within Preedit, -1 if the
	// backend hides the caret.
	Caret int

	// Text is the finalized text for ImeCommit events.
	Text string
}

// NewImeState returns a new ImeEnabled or ImeDisabled event.
func NewImeState(typ Types, win WindowID) *Ime {
	ev := &Ime{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Win = win
	return ev
}

// NewImePreedit returns a new preedit update event.
func NewImePreedit(win WindowID, preedit string, caret int) *Ime {
	ev := &Ime{}
	ev.Typ = ImePreedit
	ev.SetUnique()
	ev.Win = win
	ev.Preedit = preedit
	ev.Caret = caret
	return ev
}

// NewImeCommit returns a new commit event carrying finalized text.
func NewImeCommit(win WindowID, text string) *Ime {
	ev := &Ime{}
	ev.Typ = ImeCommit
	ev.SetUnique()
	ev.Win = win
	ev.Text = text
	return ev
}

func (ev *Ime) String() string {
	switch ev.Typ {
	case ImePreedit:
		return fmt.Sprintf("%v{Preedit: %q, Caret: %d, Time: %v}", ev.Type(), ev.Preedit, ev.Caret, ev.Time().Format("04:05"))
	case ImeCommit:
		return fmt.Sprintf("%v{Text: %q, Time: %v}", ev.Type(), ev.Text, ev.Time().Format("04:05"))
	}
	return fmt.Sprintf("%v{Win: %v, Time: %v}", ev.Type(), ev.Win, ev.Time().Format("04:05"))
}
