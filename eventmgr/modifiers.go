// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventmgr

import (
	"github.com/windkit/wind/events"
	"github.com/windkit/wind/events/key"
)

// ModTracker derives the canonical logical modifier state from whatever
// partial signal a backend provides: per-key press/release transitions
// (X11, Wayland, Win32) or an aggregate modifier bitset piggybacked on
// other events (macOS flags-changed). It emits a ModifiersChanged event
// if and only if the externally observable bitset differs from the
// previously emitted one.
type ModTracker struct {

	// emitted is the bitset carried by the last ModifiersChanged
	// event, or zero before the first one.
	emitted key.Modifiers

	// down records, per logical modifier, which physical locations are
	// currently considered held.
	down map[key.Modifiers]key.Locations
}

func (mt *ModTracker) init() {
	if mt.down == nil {
		mt.down = make(map[key.Modifiers]key.Locations)
	}
}

// Active returns the current logical modifier bitset: each modifier
// whose location mask is non-empty.
func (mt *ModTracker) Active() key.Modifiers {
	var mods key.Modifiers
	for m, locs := range mt.down {
		if locs != 0 {
			mods |= m
		}
	}
	return mods
}

// ObserveKey records one physical modifier key transition and returns a
// ModifiersChanged event if the logical bitset changed, or nil. For
// non-modifier codes it returns nil. A release of a location that is
// not tracked as held is a no-op: the aggregate path may already have
// reconciled it while the window was unfocused.
func (mt *ModTracker) ObserveKey(code key.Codes, press bool) events.Event {
	mod, loc, ok := code.Modifier()
	if !ok {
		return nil
	}
	mt.init()
	if press {
		mt.down[mod] |= loc
	} else {
		mt.down[mod] &^= loc
	}
	return mt.changed()
}

// ObserveAggregate reconciles the tracked per-location state against an
// authoritative aggregate bitset. The aggregate signal wins: for each
// logical modifier where it disagrees with the tracked state, key
// press/release events are synthesized for the locations that must have
// transitioned unobserved (a modifier released while the window was
// unfocused only shows up this way). The synthesized key events are
// returned first, followed by at most one ModifiersChanged.
func (mt *ModTracker) ObserveAggregate(mods key.Modifiers) []events.Event {
	mt.init()
	var evs []events.Event
	for _, m := range key.AllModifiers {
		locs := mt.down[m]
		switch {
		case mods&m != 0 && locs == 0:
			// active per aggregate, no location tracked: assume left
			mt.down[m] = key.Left
			ev := events.NewKey(events.KeyDown, 0, key.ModifierCode(m, key.Left), mods)
			evs = append(evs, ev)
		case mods&m == 0 && locs != 0:
			for _, loc := range []key.Locations{key.Left, key.Right} {
				if locs&loc == 0 {
					continue
				}
				ev := events.NewKey(events.KeyUp, 0, key.ModifierCode(m, loc), mods)
				evs = append(evs, ev)
			}
			mt.down[m] = 0
		}
	}
	if ch := mt.changed(); ch != nil {
		evs = append(evs, ch)
	}
	return evs
}

// changed returns a ModifiersChanged event if the active bitset differs
// from the last emitted one, updating the emitted record, or nil.
func (mt *ModTracker) changed() events.Event {
	active := mt.Active()
	if active == mt.emitted {
		return nil
	}
	mt.emitted = active
	return events.NewModifiers(active)
}
