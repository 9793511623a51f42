// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windkit/wind/events"
)

func TestRegistryWindows(t *testing.T) {
	r := &Registry{}
	r.Init()

	w1 := r.RegisterWindow(0xa1)
	w2 := r.RegisterWindow(0xa2)
	assert.NotEqual(t, w1, w2)
	assert.NotZero(t, w1)

	// idempotent per live handle
	assert.Equal(t, w1, r.RegisterWindow(0xa1))
	assert.Equal(t, 2, r.NWindows())

	id, ok := r.ResolveWindow(0xa1)
	require.True(t, ok)
	assert.Equal(t, w1, id)

	// spurious native events for unknown handles resolve to nothing
	_, ok = r.ResolveWindow(0xff)
	assert.False(t, ok)
}

func TestRegistryTombstone(t *testing.T) {
	r := &Registry{}
	r.Init()
	w := r.RegisterWindow(0xb1)

	require.True(t, r.UnregisterWindow(w))
	assert.False(t, r.UnregisterWindow(w), "second unregister is a no-op")

	// tombstoned: known for queued delivery, not live for new events
	assert.True(t, r.WindowKnown(w))
	assert.False(t, r.WindowLive(w))
	assert.Equal(t, 0, r.NWindows())

	// the native handle is released immediately; re-registering it
	// mints a fresh id
	_, ok := r.ResolveWindow(0xb1)
	assert.False(t, ok)
	w2 := r.RegisterWindow(0xb1)
	assert.NotEqual(t, w, w2)

	r.PurgeWindow(w)
	assert.False(t, r.WindowKnown(w))
	assert.False(t, r.UnregisterWindow(w))
}

func TestRegistryFocus(t *testing.T) {
	r := &Registry{}
	r.Init()
	w1 := r.RegisterWindow(1)
	w2 := r.RegisterWindow(2)

	assert.False(t, r.Focused(w1))
	r.SetFocused(w1, true)
	assert.True(t, r.Focused(w1))
	assert.False(t, r.Focused(w2))

	r.SetFocused(w1, false)
	r.SetFocused(w2, true)
	assert.False(t, r.Focused(w1))
	assert.True(t, r.Focused(w2))

	// unknown ids are tolerated
	r.SetFocused(99, true)
	assert.False(t, r.Focused(99))
}

func TestRegistryDevices(t *testing.T) {
	r := &Registry{}
	r.Init()

	d1 := r.RegisterDevice(0xc1)
	assert.Equal(t, d1, r.RegisterDevice(0xc1))

	id, ok := r.ResolveDevice(0xc1)
	require.True(t, ok)
	assert.Equal(t, d1, id)

	r.UnregisterDevice(d1)
	_, ok = r.ResolveDevice(0xc1)
	assert.False(t, ok)
	r.UnregisterDevice(d1) // no-op

	// window and device id spaces are independent
	w := r.RegisterWindow(0xc1)
	d2 := r.RegisterDevice(0xc2)
	assert.Equal(t, events.WindowID(1), w)
	assert.Equal(t, events.DeviceID(2), d2)
}
