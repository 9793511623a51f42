// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides the headless driver: a complete
// [system.App] with no native windowing glue. It backs automated
// testing and -nogui runs, and doubles as the reference for what a
// raw event source owes the core.
package offscreen

import (
	"github.com/windkit/wind/dpi"
	"github.com/windkit/wind/events"
	"github.com/windkit/wind/system"
	"github.com/windkit/wind/system/driver/base"
)

// TheApp is the single [App] for the offscreen platform.
var TheApp = &App{}

// Init initializes the offscreen platform and makes it the active
// [system.TheApp].
func Init() {
	TheApp.Init()
	system.TheApp = TheApp
}

// App is the [system.App] implementation for the offscreen platform.
type App struct {
	base.AppMulti[*Window]

	// nextHandle mints fake native handles, one per window, so the
	// registry sees the same handle discipline real backends give it.
	nextHandle base.NativeHandle
}

// Init initializes the app.
func (a *App) Init() {
	a.App.Init()
	a.Nm = "offscreen"
}

func (a *App) Platform() system.Platforms {
	return system.Offscreen
}

func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	size := opts.Size
	if size.W == 0 || size.H == 0 {
		size = dpi.LogicalSize{W: 800, H: 600}
	}

	a.nextHandle++
	id := a.Loop.Registry.RegisterWindow(a.nextHandle)

	w := &Window{
		app:   a,
		id:    id,
		title: opts.Title,
		scale: 1,
		size:  size.ToPhysical(1),
	}
	w.EvMgr.Init(id, a.Loop.Enqueue)
	w.EvMgr.DoubleClickInterval = a.Settings.DoubleClickInterval()
	w.EvMgr.ScrollWheelSpeed = a.Settings.ScrollWheelSpeed
	w.EvMgr.Ime.PreferRawOnEqualCommit = a.Settings.IME.PreferRawOnEqualCommit

	a.Mu.Lock()
	a.Windows = append(a.Windows, w)
	a.Mu.Unlock()

	// a freshly created window reports its geometry and takes focus,
	// matching what every native backend delivers
	w.EvMgr.Resize(w.size)
	w.EvMgr.Focus(true)
	return w, nil
}

// OffscreenWindow returns the offscreen window with the given event
// id, or nil if none (including destroyed windows).
func (a *App) OffscreenWindow(id events.WindowID) *Window {
	if w, ok := a.WindowByID(id).(*Window); ok {
		return w
	}
	return nil
}
