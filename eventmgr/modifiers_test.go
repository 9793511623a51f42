// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windkit/wind/events"
	"github.com/windkit/wind/events/key"
)

func TestModTrackerPerKey(t *testing.T) {
	mt := &ModTracker{}

	ch := mt.ObserveKey(key.CodeLeftShift, true)
	require.NotNil(t, ch)
	assert.Equal(t, events.ModifiersChanged, ch.Type())
	assert.Equal(t, key.Shift, ch.Modifiers())

	// second location of the same modifier: logical state unchanged
	assert.Nil(t, mt.ObserveKey(key.CodeRightShift, true))
	assert.Nil(t, mt.ObserveKey(key.CodeLeftShift, false))
	assert.Equal(t, key.Shift, mt.Active())

	ch = mt.ObserveKey(key.CodeRightShift, false)
	require.NotNil(t, ch)
	assert.Equal(t, key.Modifiers(0), ch.Modifiers())

	// non-modifier keys are ignored
	assert.Nil(t, mt.ObserveKey(key.CodeA, true))
	// release of an untracked location is a no-op
	assert.Nil(t, mt.ObserveKey(key.CodeLeftAlt, false))
}

// The number of emitted ModifiersChanged events must equal the number
// of distinct consecutive bitset values, never more.
func TestModTrackerChangeCount(t *testing.T) {
	mt := &ModTracker{}
	seq := []struct {
		code  key.Codes
		press bool
	}{
		{key.CodeLeftShift, true},   // 0 -> Shift
		{key.CodeRightShift, true},  // Shift (no change)
		{key.CodeLeftControl, true}, // -> Shift+Control
		{key.CodeLeftShift, false},  // Shift+Control (right still down)
		{key.CodeRightShift, false}, // -> Control
		{key.CodeLeftControl, false}, // -> 0
		{key.CodeLeftControl, false}, // 0 (no change)
	}
	changes := 0
	for _, st := range seq {
		if ch := mt.ObserveKey(st.code, st.press); ch != nil {
			changes++
		}
	}
	assert.Equal(t, 4, changes)
}

func TestModTrackerAggregate(t *testing.T) {
	mt := &ModTracker{}

	// aggregate reports Shift+Meta active with nothing tracked:
	// synthesize one key-down per modifier, then one ModifiersChanged
	evs := mt.ObserveAggregate(key.Shift | key.Meta)
	require.Len(t, evs, 3)
	assert.Equal(t, events.KeyDown, evs[0].Type())
	assert.Equal(t, events.KeyDown, evs[1].Type())
	assert.Equal(t, events.ModifiersChanged, evs[2].Type())
	assert.Equal(t, key.Shift|key.Meta, evs[2].Modifiers())

	// same aggregate again: nothing to reconcile, nothing emitted
	assert.Empty(t, mt.ObserveAggregate(key.Shift|key.Meta))

	// modifier released while unfocused: aggregate signal is ground
	// truth, tracked bookkeeping is corrected with synthesized key-ups
	evs = mt.ObserveAggregate(key.Meta)
	require.Len(t, evs, 2)
	assert.Equal(t, events.KeyUp, evs[0].Type())
	assert.Equal(t, key.CodeLeftShift, evs[0].(*events.Key).Code)
	assert.Equal(t, events.ModifiersChanged, evs[1].Type())
	assert.Equal(t, key.Meta, evs[1].Modifiers())
}

func TestModTrackerAggregateBothLocations(t *testing.T) {
	mt := &ModTracker{}
	mt.ObserveKey(key.CodeLeftControl, true)
	mt.ObserveKey(key.CodeRightControl, true)

	evs := mt.ObserveAggregate(0)
	require.Len(t, evs, 3)
	assert.Equal(t, key.CodeLeftControl, evs[0].(*events.Key).Code)
	assert.Equal(t, key.CodeRightControl, evs[1].(*events.Key).Code)
	assert.Equal(t, events.ModifiersChanged, evs[2].Type())
	assert.Equal(t, key.Modifiers(0), mt.Active())
}
