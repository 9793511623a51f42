// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windkit/wind/dpi"
	"github.com/windkit/wind/events"
	"github.com/windkit/wind/events/key"
	"github.com/windkit/wind/system"
)

// evRec records the window events a run of the loop delivers.
type evRec struct {
	system.HandlerBase
	evs  []events.Event
	typs []events.Types
}

func (r *evRec) WindowEvent(win events.WindowID, ev events.Event) {
	r.evs = append(r.evs, ev)
	r.typs = append(r.typs, ev.Type())
}

func newApp(t *testing.T) (*App, *Window) {
	t.Helper()
	a := &App{}
	a.Init()
	w, err := a.NewWindow(&system.NewWindowOptions{Title: "test"})
	require.NoError(t, err)
	return a, w.(*Window)
}

func pump(t *testing.T, a *App, h system.Handler) {
	t.Helper()
	require.NoError(t, a.Loop.Pump(h, 0))
}

func TestWindowCreation(t *testing.T) {
	a, w := newApp(t)
	assert.Equal(t, system.Offscreen, a.Platform())
	assert.Equal(t, 1, a.NWindows())
	assert.Equal(t, "test", w.Name())
	assert.Equal(t, dpi.PhysicalSize{W: 800, H: 600}, w.Size())
	assert.Equal(t, float32(1), w.Scale())

	w.RequestRedraw()
	w.RequestRedraw()

	rec := &evRec{}
	pump(t, a, rec)
	assert.Equal(t, []events.Types{
		events.WindowResize, events.WindowFocus, events.WindowPaint,
	}, rec.typs)
	assert.True(t, w.HasFocus())
}

func TestWindowClose(t *testing.T) {
	a, w := newApp(t)
	pump(t, a, &evRec{})

	w.Close()
	assert.True(t, w.IsClosed())
	assert.Equal(t, 0, a.NWindows())

	rec := &evRec{}
	pump(t, a, rec)
	assert.Equal(t, []events.Types{events.WindowDestroy}, rec.typs)
	assert.Nil(t, a.OffscreenWindow(w.ID()))

	// closing again is a no-op and no further events reference the id
	w.Close()
	rec2 := &evRec{}
	pump(t, a, rec2)
	assert.Empty(t, rec2.typs)
}

func TestKeyInput(t *testing.T) {
	a, w := newApp(t)
	pump(t, a, &evRec{})

	w.EvMgr.Key(events.KeyDown, 'a', key.CodeA, 0)
	w.EvMgr.Key(events.KeyUp, 'a', key.CodeA, 0)

	rec := &evRec{}
	pump(t, a, rec)
	require.Equal(t, []events.Types{events.KeyDown, events.KeyUp}, rec.typs)
	kd := rec.evs[0].(*events.Key)
	assert.Equal(t, 'a', kd.Rune)
	assert.Equal(t, "a", kd.Text)
	assert.Equal(t, w.ID(), kd.Window())
}

// The raw-character vs IME-commit race, end to end: with IME enabled,
// a keypress whose raw character differs from the composed commit
// yields only the commit.
func TestImeCommitRace(t *testing.T) {
	a, w := newApp(t)
	pump(t, a, &evRec{})

	w.SetImeEnabled(true)
	require.True(t, w.ImeEnabled())

	// the backend queues the raw character, then the input method
	// commits the composed one within the same dispatch turn
	w.EvMgr.Key(events.KeyDown, '.', key.CodeFullStop, 0)
	w.EvMgr.Ime.ObserveCommit("。")

	rec := &evRec{}
	pump(t, a, rec)
	require.Equal(t, []events.Types{events.ImeEnabled, events.ImeCommit}, rec.typs)
	assert.Equal(t, "。", rec.evs[1].(*events.Ime).Text)

	// the replayed key-up with the untransformed text is swallowed
	w.EvMgr.Key(events.KeyUp, '.', key.CodeFullStop, 0)
	rec2 := &evRec{}
	pump(t, a, rec2)
	assert.Empty(t, rec2.typs)
}

func TestDoubleClick(t *testing.T) {
	a, w := newApp(t)
	pump(t, a, &evRec{})

	at := image.Pt(5, 5)
	w.EvMgr.MouseButton(events.MouseDown, events.Left, at, 0)
	w.EvMgr.MouseButton(events.MouseUp, events.Left, at, 0)
	w.EvMgr.MouseButton(events.MouseDown, events.Left, at, 0)
	w.EvMgr.MouseButton(events.MouseUp, events.Left, at, 0)

	rec := &evRec{}
	pump(t, a, rec)
	assert.Equal(t, []events.Types{
		events.MouseDown, events.MouseUp, events.DoubleClick, events.MouseUp,
	}, rec.typs)
}

func TestScaleChange(t *testing.T) {
	a, w := newApp(t)
	pump(t, a, &evRec{})

	w.SetScale(2)
	assert.Equal(t, dpi.PhysicalSize{W: 1600, H: 1200}, w.Size())

	// invalid scale factors are dropped at the source
	w.SetScale(-1)
	assert.Equal(t, float32(2), w.Scale())

	rec := &evRec{}
	pump(t, a, rec)
	require.Equal(t, []events.Types{events.WindowScale}, rec.typs)
	sv := rec.evs[0].(*events.WindowScaleEvent)
	assert.Equal(t, float32(2), sv.Scale)
	assert.Equal(t, dpi.PhysicalSize{W: 1600, H: 1200}, sv.Size)
}

func TestWindowLookup(t *testing.T) {
	a, w := newApp(t)
	w2, err := a.NewWindow(nil)
	require.NoError(t, err)

	assert.Equal(t, 2, a.NWindows())
	assert.Equal(t, w, a.Window(0))
	assert.Equal(t, w2, a.WindowByID(w2.ID()))
	assert.Nil(t, a.Window(5))

	w2.SetName("other")
	assert.Equal(t, w2, a.WindowByName("other"))
	assert.Nil(t, a.WindowByName("missing"))
}

func TestQuit(t *testing.T) {
	a, _ := newApp(t)
	rec := &evRec{}
	go a.Quit()
	require.NoError(t, a.Run(rec))

	// the loop is single-use afterwards
	assert.ErrorIs(t, a.Run(rec), system.ErrRecreation)
	assert.ErrorIs(t, a.Proxy().Send(1), system.ErrLoopClosed)
}
