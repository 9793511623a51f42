// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventmgr

import (
	"github.com/windkit/wind/events"
	"github.com/windkit/wind/logx"
)

// ImeStates are the states of the input-method composition machine.
type ImeStates int32

const (
	// ImeOff means the application has not requested IME events; raw
	// key events pass through untouched.
	ImeOff ImeStates = iota

	// ImeGround means IME is armed and no composition is in progress.
	ImeGround

	// ImeComposing means marked (preedit) text is non-empty.
	ImeComposing

	// ImeCommitted means a commit was just emitted; the next key-up
	// for the same key cycle is suppressed once, and the state returns
	// to ground when the serial advances on the next key-down.
	ImeCommitted

	// ImeStatesN is the number of IME states.
	ImeStatesN
)

var imeStateNames = [ImeStatesN]string{"Off", "Ground", "Composing", "Committed"}

func (st ImeStates) String() string {
	if st < 0 || st >= ImeStatesN {
		return "Off"
	}
	return imeStateNames[st]
}

// pendingKey correlates a tentatively queued raw key text payload with
// the key-cycle serial it came from, so a later commit for the same
// cycle can revoke it.
type pendingKey struct {
	serial uint64
	text   string
	ev     events.Event
}

// ImeMachine governs whether raw character events or only preedit and
// commit events reach the application, and arbitrates the race between
// a backend's raw character signal and its IME commit signal for the
// same physical keypress: on some backends a single key-down produces
// both a raw character (".") and, within the same dispatch turn, a
// composed commit ("。"). At most one of the two is ever delivered.
type ImeMachine struct {

	// Win is the window this machine belongs to.
	Win events.WindowID

	// Send is the sink for the IME events the machine emits.
	Send func(ev events.Event)

	// PreferRawOnEqualCommit delivers the raw character instead of the
	// commit when their texts are identical. This is a policy knob
	// tuned against real input methods, not a hard law; the default
	// (false) suppresses the raw character whenever IME is enabled.
	PreferRawOnEqualCommit bool

	state         ImeStates
	serial        uint64
	preedit       string
	pending       []pendingKey
	suppressKeyUp bool
}

// State returns the current machine state.
func (im *ImeMachine) State() ImeStates {
	return im.state
}

// Enabled reports whether IME is armed (any state but off).
func (im *ImeMachine) Enabled() bool {
	return im.state != ImeOff
}

// Serial returns the current key-cycle serial.
func (im *ImeMachine) Serial() uint64 {
	return im.serial
}

// Enable arms the machine, emitting ImeEnabled. Idempotent.
func (im *ImeMachine) Enable() {
	if im.state != ImeOff {
		return
	}
	im.state = ImeGround
	im.Send(events.NewImeState(events.ImeEnabled, im.Win))
}

// Disable disarms the machine, clearing any marked text and pending
// entries and emitting ImeDisabled, unless it was already off. Called
// on app-initiated disable and on window close.
func (im *ImeMachine) Disable() {
	if im.state == ImeOff {
		return
	}
	im.state = ImeOff
	im.preedit = ""
	im.pending = nil
	im.suppressKeyUp = false
	im.Send(events.NewImeState(events.ImeDisabled, im.Win))
}

// ObserveKeyDown advances the key-cycle serial and returns it. Called
// by the manager for every non-modifier key-down while the machine is
// enabled. A committed state returns to ground here, and stale pending
// entries from before the previous cycle are dropped.
func (im *ImeMachine) ObserveKeyDown() uint64 {
	im.serial++
	if im.state == ImeCommitted {
		im.state = ImeGround
	}
	im.suppressKeyUp = false
	// keep the previous cycle's entry for commit fallback, drop older
	live := im.pending[:0]
	for _, p := range im.pending {
		if p.serial+1 >= im.serial {
			live = append(live, p)
		}
	}
	im.pending = live
	return im.serial
}

// TrackPending registers a tentatively queued raw key event with text
// for the given serial. The event stays in the dispatch queue; if a
// commit for the same cycle arrives with different text, it is canceled
// in place and dispatch skips it.
func (im *ImeMachine) TrackPending(serial uint64, text string, ev events.Event) {
	if im.state == ImeOff || text == "" {
		return
	}
	im.pending = append(im.pending, pendingKey{serial: serial, text: text, ev: ev})
}

// SuppressKeyUp reports whether the next key-up must be swallowed, and
// consumes the suppression. After a commit, backends have been observed
// to replay the key-up with the original untransformed text; it is
// suppressed exactly once.
func (im *ImeMachine) SuppressKeyUp() bool {
	if !im.suppressKeyUp {
		return false
	}
	im.suppressKeyUp = false
	return true
}

// ObserveMarkedText processes a backend report of the composition
// (marked) text and caret. Non-empty text enters or updates the
// composing state; empty text without a commit cancels the composition.
// Emits ImePreedit on every observable change.
func (im *ImeMachine) ObserveMarkedText(text string, caret int) {
	if im.state == ImeOff {
		logx.Debug("ime: marked text while disabled", "win", im.Win)
		return
	}
	if text == "" {
		if im.state != ImeComposing {
			return
		}
		im.state = ImeGround
		im.preedit = ""
		im.Send(events.NewImePreedit(im.Win, "", -1))
		return
	}
	im.state = ImeComposing
	im.preedit = text
	im.Send(events.NewImePreedit(im.Win, text, caret))
}

// ObserveCommit processes a backend report of committed text: it ends
// any composition (emitting an empty ImePreedit first), resolves the
// race against the pending raw character for the same key cycle, and
// emits ImeCommit. After a commit the machine is in the committed state
// and the next key-up is suppressed once.
func (im *ImeMachine) ObserveCommit(text string) {
	if im.state == ImeOff {
		logx.Debug("ime: commit while disabled", "win", im.Win)
		return
	}
	if im.state == ImeComposing {
		im.preedit = ""
		im.Send(events.NewImePreedit(im.Win, "", -1))
	}

	deliver := true
	if p := im.takePending(); p != nil {
		if p.text == text && im.PreferRawOnEqualCommit {
			// identical texts and policy prefers the raw character:
			// let the queued event stand and drop the commit
			deliver = false
		} else {
			p.ev.SetCanceled()
		}
	}
	if deliver {
		im.Send(events.NewImeCommit(im.Win, text))
	}
	im.state = ImeCommitted
	im.suppressKeyUp = true
}

// takePending removes and returns the pending entry for the current
// serial, falling back to the newest still-live entry when backend
// timing makes the serials disagree. Returns nil if none.
func (im *ImeMachine) takePending() *pendingKey {
	if len(im.pending) == 0 {
		return nil
	}
	idx := len(im.pending) - 1
	for i := len(im.pending) - 1; i >= 0; i-- {
		if im.pending[i].serial == im.serial {
			idx = i
			break
		}
	}
	p := im.pending[idx]
	im.pending = append(im.pending[:idx], im.pending[idx+1:]...)
	return &p
}
