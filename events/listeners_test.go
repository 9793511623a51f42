// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListeners(t *testing.T) {
	var ls Listeners
	var got []string
	ls.Add(KeyDown, func(ev Event) { got = append(got, "first") })
	ls.Add(KeyDown, func(ev Event) { got = append(got, "second") })

	ev := NewWindowEvent(WindowFocus, 1)
	ls.Call(ev)
	assert.Empty(t, got, "no listeners for this type")

	kd := NewKey(KeyDown, 'a', 0, 0)
	ls.Call(kd)
	// reverse order: the last listener added runs first
	assert.Equal(t, []string{"second", "first"}, got)
}

func TestListenersHandled(t *testing.T) {
	var ls Listeners
	var got []string
	ls.Add(MouseDown, func(ev Event) { got = append(got, "low") })
	ls.Add(MouseDown, func(ev Event) {
		got = append(got, "override")
		ev.SetHandled()
	})

	ev := NewMouse(MouseDown, Left, image.Pt(0, 0), 0)
	ls.Call(ev)
	assert.Equal(t, []string{"override"}, got, "Handled stops propagation")

	ls.Call(ev)
	assert.Len(t, got, 1, "already-handled events are not redelivered")
}
