// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventmgr

import (
	"image"

	"github.com/windkit/wind/events"
	"github.com/windkit/wind/logx"
)

// PointerTracker assigns and retires stable finger identities for
// multi-touch contacts and tracks primary-pointer status. The first
// contact to begin while no contacts are down becomes primary and keeps
// that status until the contact count returns to zero, even if it lifts
// while other fingers remain down. Non-touch pointers (mouse) are
// always primary and do not go through the tracker.
type PointerTracker struct {
	next uint64
	live map[int64]*contact

	// primary is the native id of the sticky primary contact of the
	// current gesture; valid only while havePrimary is set.
	primary     int64
	havePrimary bool
}

type contact struct {
	finger events.FingerID
	pos    image.Point
}

// Live returns the number of contacts currently down.
func (pt *PointerTracker) Live() int {
	return len(pt.live)
}

// Begin starts tracking a native touch id, allocating a new finger
// identity and deciding primary status. A duplicate begin for an
// already-live native id does not allocate: it returns the existing
// identity, since some backends replay touch-down events.
func (pt *PointerTracker) Begin(native int64, pos image.Point) (events.FingerID, bool) {
	if pt.live == nil {
		pt.live = make(map[int64]*contact)
	}
	if c, ok := pt.live[native]; ok {
		logx.Debug("pointer: duplicate touch begin", "native", native)
		c.pos = pos
		return c.finger, pt.isPrimary(native)
	}
	if len(pt.live) == 0 {
		pt.primary = native
		pt.havePrimary = true
	}
	pt.next++
	c := &contact{finger: events.FingerID(pt.next), pos: pos}
	pt.live[native] = c
	return c.finger, pt.isPrimary(native)
}

// Update records a position update for a native touch id. ok is false
// for untracked ids, which callers must treat as a no-op: spurious
// duplicate native events are observed in practice.
func (pt *PointerTracker) Update(native int64, pos image.Point) (finger events.FingerID, primary, ok bool) {
	c, ok := pt.live[native]
	if !ok {
		logx.Debug("pointer: update for untracked touch", "native", native)
		return 0, false, false
	}
	c.pos = pos
	return c.finger, pt.isPrimary(native), true
}

// End retires a native touch id, returning its finger identity and
// primary status. ok is false for untracked ids (no-op). When the last
// contact lifts, primary status is released for the next gesture.
func (pt *PointerTracker) End(native int64) (finger events.FingerID, primary, ok bool) {
	c, ok := pt.live[native]
	if !ok {
		logx.Debug("pointer: end for untracked touch", "native", native)
		return 0, false, false
	}
	primary = pt.isPrimary(native)
	delete(pt.live, native)
	if len(pt.live) == 0 {
		pt.havePrimary = false
	}
	return c.finger, primary, true
}

func (pt *PointerTracker) isPrimary(native int64) bool {
	return pt.havePrimary && pt.primary == native
}
