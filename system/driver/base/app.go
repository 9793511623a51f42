// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"slices"
	"sync"

	"github.com/windkit/wind/events"
	"github.com/windkit/wind/system"
)

// App contains the data and logic common to all implementations of
// [system.App]. Concrete drivers embed [AppMulti] (or App directly for
// single-window platforms) and add their native glue.
type App struct {

	// Mu protects the window list and name against access from
	// non-loop threads.
	Mu sync.Mutex

	// Nm is the overall app name.
	Nm string

	// Loop is the app's event loop.
	Loop Loop

	// Settings are the tuning knobs in effect.
	Settings system.Settings
}

// Init prepares the shared state. Drivers call this before anything
// else.
func (a *App) Init() {
	a.Settings = system.DefaultSettings()
	a.Loop.Init()
	a.Loop.CompressEvents = a.Settings.CompressEvents
}

func (a *App) Name() string {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return a.Nm
}

func (a *App) SetName(name string) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Nm = name
}

// SetSettings replaces the tuning knobs, rewiring the loop options that
// derive from them. Loop thread only.
func (a *App) SetSettings(st system.Settings) {
	a.Settings = st
	a.Loop.CompressEvents = st.CompressEvents
}

// Proxy returns the loop's thread-safe proxy handle.
func (a *App) Proxy() system.Proxy {
	return a.Loop.Proxy()
}

// Quit requests a clean exit of the event loop with code 0. Callable
// from any thread.
func (a *App) Quit() {
	a.Loop.Quit()
}

// Run runs the event loop with the given handler, blocking until the
// application exits.
func (a *App) Run(h system.Handler) error {
	return a.Loop.Run(h)
}

// AppMulti contains the data and logic common to [system.App]
// implementations on multi-window platforms (desktop and offscreen).
// It is parameterized by the driver's concrete window type.
type AppMulti[W system.Window] struct {
	App

	// Windows are the windows of the app, in order of creation.
	Windows []W
}

func (a *AppMulti[W]) NWindows() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return len(a.Windows)
}

func (a *AppMulti[W]) Window(win int) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if win >= 0 && win < len(a.Windows) {
		return a.Windows[win]
	}
	return nil
}

func (a *AppMulti[W]) WindowByName(name string) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, w := range a.Windows {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

func (a *AppMulti[W]) WindowByID(id events.WindowID) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, w := range a.Windows {
		if w.ID() == id {
			return w
		}
	}
	return nil
}

// RemoveWindow removes the given Window from the app's list of windows.
// It does not close it; see [system.Window.Close] for that.
func (a *AppMulti[W]) RemoveWindow(win system.Window) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Windows = slices.DeleteFunc(a.Windows, func(w W) bool {
		return system.Window(w) == win
	})
}
