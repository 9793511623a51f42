// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the backend-independent core every driver is
// built on: the [Registry] minting logical window and device ids from
// native handles, the [Loop] event queue and control-flow scheduler,
// the thread-safe [Proxy], and shared [App] scaffolding.
package base

import (
	"github.com/windkit/wind/events"
	"github.com/windkit/wind/logx"
)

// NativeHandle is an opaque backend-native window or device identifier
// (an X11 window, a Win32 HWND, an ObjC pointer). The registry never
// interprets it beyond map identity.
type NativeHandle uintptr

// windowEntry is the registry's record for one logical window. It owns
// the per-window state the loop thread mutates while processing events.
type windowEntry struct {
	id        events.WindowID
	handle    NativeHandle
	focused   bool
	tombstone bool
}

// Registry is the sole authority minting and invalidating the logical
// window and device ids carried by events. It maps backend-native
// handles to ids, and holds per-window focus state. It is owned by the
// loop thread exclusively and requires no locking.
//
// Unregistering a window tombstones its entry rather than removing it:
// events already queued for the id are still delivered, then the loop
// emits the final WindowDestroy and purges the entry. New events for a
// tombstoned id are rejected at the queue.
type Registry struct {
	nextWin uint64
	nextDev uint64

	winByHandle map[NativeHandle]events.WindowID
	windows     map[events.WindowID]*windowEntry

	devByHandle map[NativeHandle]events.DeviceID
	devices     map[events.DeviceID]NativeHandle
}

// Init initializes the registry maps. Must be called before use.
func (r *Registry) Init() {
	r.winByHandle = map[NativeHandle]events.WindowID{}
	r.windows = map[events.WindowID]*windowEntry{}
	r.devByHandle = map[NativeHandle]events.DeviceID{}
	r.devices = map[events.DeviceID]NativeHandle{}
}

// RegisterWindow mints a window id for the given native handle.
// Idempotent per handle: registering an already-live handle returns the
// existing id.
func (r *Registry) RegisterWindow(handle NativeHandle) events.WindowID {
	if id, ok := r.winByHandle[handle]; ok {
		return id
	}
	r.nextWin++
	id := events.WindowID(r.nextWin)
	r.winByHandle[handle] = id
	r.windows[id] = &windowEntry{id: id, handle: handle}
	return id
}

// ResolveWindow returns the id for a native handle. The second result
// is false for unregistered handles: backends routinely observe
// spurious native events for already-destroyed handles, and must be
// able to drop them without minting ids.
func (r *Registry) ResolveWindow(handle NativeHandle) (events.WindowID, bool) {
	id, ok := r.winByHandle[handle]
	return id, ok
}

// UnregisterWindow tombstones the entry for the given id, so queued
// events still resolve but new ones are rejected. Returns false if the
// id is unknown or already tombstoned.
func (r *Registry) UnregisterWindow(id events.WindowID) bool {
	we := r.windows[id]
	if we == nil || we.tombstone {
		return false
	}
	we.tombstone = true
	delete(r.winByHandle, we.handle)
	return true
}

// PurgeWindow removes a tombstoned entry entirely. Called by the loop
// after the final WindowDestroy for the id has been delivered.
func (r *Registry) PurgeWindow(id events.WindowID) {
	we := r.windows[id]
	if we == nil {
		return
	}
	if !we.tombstone {
		logx.Debug("registry: purging window that was never unregistered", "win", id)
		delete(r.winByHandle, we.handle)
	}
	delete(r.windows, id)
}

// WindowLive reports whether the id is registered and not tombstoned.
// Only live windows accept new events.
func (r *Registry) WindowLive(id events.WindowID) bool {
	we := r.windows[id]
	return we != nil && !we.tombstone
}

// WindowKnown reports whether the id is registered, tombstoned or not.
// Known windows can still have queued events delivered.
func (r *Registry) WindowKnown(id events.WindowID) bool {
	return r.windows[id] != nil
}

// NWindows returns the number of live windows.
func (r *Registry) NWindows() int {
	n := 0
	for _, we := range r.windows {
		if !we.tombstone {
			n++
		}
	}
	return n
}

// SetFocused records keyboard focus for the given window. Mutated only
// by the loop thread when it processes a focus event.
func (r *Registry) SetFocused(id events.WindowID, focused bool) {
	if we := r.windows[id]; we != nil {
		we.focused = focused
	}
}

// Focused reports whether the given window has keyboard focus.
func (r *Registry) Focused(id events.WindowID) bool {
	we := r.windows[id]
	return we != nil && we.focused
}

// RegisterDevice mints a device id for the given native handle,
// idempotent per handle.
func (r *Registry) RegisterDevice(handle NativeHandle) events.DeviceID {
	if id, ok := r.devByHandle[handle]; ok {
		return id
	}
	r.nextDev++
	id := events.DeviceID(r.nextDev)
	r.devByHandle[handle] = id
	r.devices[id] = handle
	return id
}

// ResolveDevice returns the id for a native device handle, if any.
func (r *Registry) ResolveDevice(handle NativeHandle) (events.DeviceID, bool) {
	id, ok := r.devByHandle[handle]
	return id, ok
}

// UnregisterDevice removes the entry for the given device id. Devices
// carry no queued-delivery obligations, so removal is immediate.
func (r *Registry) UnregisterDevice(id events.DeviceID) {
	handle, ok := r.devices[id]
	if !ok {
		return
	}
	delete(r.devByHandle, handle)
	delete(r.devices, id)
}
