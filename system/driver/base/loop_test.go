// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"fmt"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windkit/wind/dpi"
	"github.com/windkit/wind/events"
	"github.com/windkit/wind/system"
)

// recorder logs every handler callback in order and forwards window
// events to an optional hook, so tests can both assert sequences and
// drive the loop from inside a callback.
type recorder struct {
	log      []string
	causes   []system.StartCauses
	users    []any
	onWindow func(win events.WindowID, ev events.Event)
	onNew    func(sc system.StartCause)
	onWait   func()
}

func (r *recorder) NewEvents(sc system.StartCause) {
	r.causes = append(r.causes, sc.Cause)
	r.log = append(r.log, fmt.Sprintf("NewEvents(%v)", sc.Cause))
	if r.onNew != nil {
		r.onNew(sc)
	}
}

func (r *recorder) CanCreateSurfaces() { r.log = append(r.log, "CanCreateSurfaces") }
func (r *recorder) Resumed()           { r.log = append(r.log, "Resumed") }
func (r *recorder) Suspended()         { r.log = append(r.log, "Suspended") }
func (r *recorder) DestroySurfaces()   { r.log = append(r.log, "DestroySurfaces") }
func (r *recorder) MemoryWarning()     { r.log = append(r.log, "MemoryWarning") }
func (r *recorder) ProxyWakeUp()       { r.log = append(r.log, "ProxyWakeUp") }

func (r *recorder) WindowEvent(win events.WindowID, ev events.Event) {
	r.log = append(r.log, fmt.Sprintf("%v(%d)", ev.Type(), win))
	if r.onWindow != nil {
		r.onWindow(win, ev)
	}
}

func (r *recorder) DeviceEvent(dev events.DeviceID, ev events.Event) {
	r.log = append(r.log, fmt.Sprintf("%v(dev %d)", ev.Type(), dev))
}

func (r *recorder) AboutToWait() {
	r.log = append(r.log, "AboutToWait")
	if r.onWait != nil {
		r.onWait()
	}
}

func (r *recorder) LoopExiting() { r.log = append(r.log, "LoopExiting") }

func (r *recorder) UserEvent(data any) {
	r.users = append(r.users, data)
	r.log = append(r.log, fmt.Sprintf("UserEvent(%v)", data))
}

func newLoop() *Loop {
	l := &Loop{}
	l.Init()
	return l
}

func count(log []string, entry string) int {
	n := 0
	for _, s := range log {
		if s == entry {
			n++
		}
	}
	return n
}

// The first iteration of a fresh loop delivers exactly the documented
// sequence: NewEvents(Init), the lifecycle pair, queued events in
// order, AboutToWait, then one coalesced paint per window.
func TestLoopFirstIteration(t *testing.T) {
	l := newLoop()
	win := l.Registry.RegisterWindow(1)
	rec := &recorder{}

	l.Enqueue(events.NewWindowResize(win, dpi.PhysicalSize{W: 800, H: 600}))
	l.RequestRedraw(win)
	l.RequestRedraw(win)

	require.NoError(t, l.Pump(rec, 0))
	assert.Equal(t, []string{
		"NewEvents(Init)",
		"CanCreateSurfaces",
		"Resumed",
		"WindowResize(1)",
		"AboutToWait",
		"WindowPaint(1)",
	}, rec.log)
}

func TestLoopRedrawCoalescing(t *testing.T) {
	l := newLoop()
	win := l.Registry.RegisterWindow(1)
	rec := &recorder{}

	for i := 0; i < 5; i++ {
		l.RequestRedraw(win)
	}
	// a paint request made while delivering the paint defers to the
	// next iteration
	rec.onWindow = func(w events.WindowID, ev events.Event) {
		if ev.Type() == events.WindowPaint {
			l.RequestRedraw(w)
		}
	}

	require.NoError(t, l.Pump(rec, 0))
	assert.Equal(t, 1, count(rec.log, "WindowPaint(1)"))

	require.NoError(t, l.Pump(rec, 0))
	assert.Equal(t, 2, count(rec.log, "WindowPaint(1)"))
}

// Events enqueued from inside a callback join the same drain pass, in
// FIFO order, behind everything already queued.
func TestLoopReentrantEnqueue(t *testing.T) {
	l := newLoop()
	win := l.Registry.RegisterWindow(1)
	rec := &recorder{}
	rec.onWindow = func(w events.WindowID, ev events.Event) {
		if ev.Type() == events.WindowFocus {
			l.Enqueue(events.NewWindowEvent(events.WindowClose, w))
		}
	}

	l.Enqueue(events.NewWindowEvent(events.WindowFocus, win))
	l.Enqueue(events.NewWindowMove(win, dpi.PhysicalPosition{X: 5, Y: 5}))

	require.NoError(t, l.Pump(rec, 0))
	assert.Equal(t, []string{
		"NewEvents(Init)",
		"CanCreateSurfaces",
		"Resumed",
		"WindowFocus(1)",
		"WindowMove(1)",
		"WindowClose(1)",
		"AboutToWait",
	}, rec.log)
	assert.True(t, l.Registry.Focused(win))
}

// Destroying a window with an event still queued delivers the queued
// event, then the final WindowDestroy, and nothing for that id after.
func TestLoopDestroyDelivery(t *testing.T) {
	l := newLoop()
	win := l.Registry.RegisterWindow(1)
	rec := &recorder{}

	l.Enqueue(events.NewWindowResize(win, dpi.PhysicalSize{W: 10, H: 10}))
	l.DestroyWindow(win)
	// new events for the tombstoned window are rejected
	l.Enqueue(events.NewWindowEvent(events.WindowFocus, win))
	l.RequestRedraw(win)

	require.NoError(t, l.Pump(rec, 0))
	assert.Equal(t, []string{
		"NewEvents(Init)",
		"CanCreateSurfaces",
		"Resumed",
		"WindowResize(1)",
		"WindowDestroy(1)",
		"AboutToWait",
	}, rec.log)
	assert.False(t, l.Registry.WindowKnown(win))
}

// Once Exit is set during event delivery, no further window or device
// events are delivered, AboutToWait does not fire, and the mandatory
// final LoopExiting does.
func TestLoopExitLatch(t *testing.T) {
	l := newLoop()
	win := l.Registry.RegisterWindow(1)
	rec := &recorder{}
	rec.onWindow = func(w events.WindowID, ev events.Event) {
		l.Exit(0)
	}

	l.Enqueue(events.NewWindowEvent(events.WindowFocus, win))
	l.Enqueue(events.NewWindowEvent(events.WindowClose, win))
	l.RequestRedraw(win)

	require.NoError(t, l.Run(rec))
	assert.Equal(t, []string{
		"NewEvents(Init)",
		"CanCreateSurfaces",
		"Resumed",
		"WindowFocus(1)",
		"DestroySurfaces",
		"LoopExiting",
	}, rec.log)

	// a completed loop is single-use
	assert.ErrorIs(t, l.Run(rec), system.ErrRecreation)
	assert.ErrorIs(t, l.Pump(rec, 0), system.ErrRecreation)
}

func TestLoopExitCode(t *testing.T) {
	l := newLoop()
	rec := &recorder{}
	rec.onNew = func(sc system.StartCause) {
		l.Exit(3)
	}
	err := l.Run(rec)
	var ee *system.ExitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.Code)
}

// Exit cannot be downgraded by a later SetFlow in the same iteration.
func TestLoopExitNotDowngradable(t *testing.T) {
	l := newLoop()
	rec := &recorder{}
	rec.onNew = func(sc system.StartCause) {
		l.Exit(0)
		l.SetFlow(system.Poll())
	}
	require.NoError(t, l.Run(rec))
	assert.Equal(t, "LoopExiting", rec.log[len(rec.log)-1])
}

func TestLoopPollCause(t *testing.T) {
	l := newLoop()
	rec := &recorder{}
	n := 0
	rec.onNew = func(sc system.StartCause) {
		n++
		if n >= 3 {
			l.Exit(0)
			return
		}
		l.SetFlow(system.Poll())
	}
	require.NoError(t, l.Run(rec))
	assert.Equal(t, []system.StartCauses{
		system.CauseInit, system.CausePoll, system.CausePoll,
	}, rec.causes)
}

// A WaitUntil deadline already in the past runs the next iteration
// immediately with cause ResumeTimeReached.
func TestLoopWaitUntilPast(t *testing.T) {
	l := newLoop()
	rec := &recorder{}
	deadline := time.Now().Add(-time.Millisecond)
	rec.onNew = func(sc system.StartCause) {
		if sc.Cause == system.CauseInit {
			l.SetFlow(system.WaitUntil(deadline))
			return
		}
		l.Exit(0)
	}

	start := time.Now()
	require.NoError(t, l.Run(rec))
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	require.Len(t, rec.causes, 2)
	assert.Equal(t, system.CauseResumeTimeReached, rec.causes[1])
}

func TestLoopWaitUntilFuture(t *testing.T) {
	l := newLoop()
	rec := &recorder{}
	var got system.StartCause
	rec.onNew = func(sc system.StartCause) {
		if sc.Cause == system.CauseInit {
			l.SetFlow(system.WaitDuration(5 * time.Millisecond))
			return
		}
		got = sc
		l.Exit(0)
	}

	require.NoError(t, l.Run(rec))
	assert.Equal(t, system.CauseResumeTimeReached, got.Cause)
	assert.False(t, got.RequestedResume.IsZero())
	assert.False(t, got.Start.IsZero())
}

// An external wake before the WaitUntil deadline runs the iteration
// early with WaitCancelled carrying the pending deadline.
func TestLoopWaitCancelled(t *testing.T) {
	l := newLoop()
	rec := &recorder{}
	var got system.StartCause
	rec.onNew = func(sc system.StartCause) {
		switch sc.Cause {
		case system.CauseInit:
			l.SetFlow(system.WaitUntil(time.Now().Add(time.Minute)))
			l.Proxy().WakeUp()
		default:
			got = sc
			l.Exit(0)
		}
	}

	start := time.Now()
	require.NoError(t, l.Run(rec))
	assert.Less(t, time.Since(start), time.Minute)
	assert.Equal(t, system.CauseWaitCancelled, got.Cause)
	assert.False(t, got.RequestedResume.IsZero())
}

func TestLoopQuitFromOtherThread(t *testing.T) {
	l := newLoop()
	rec := &recorder{}
	done := make(chan struct{})
	rec.onNew = func(sc system.StartCause) {
		if sc.Cause != system.CauseInit {
			return
		}
		go func() {
			defer close(done)
			l.Quit()
		}()
	}

	require.NoError(t, l.Run(rec))
	<-done
	assert.Equal(t, "LoopExiting", rec.log[len(rec.log)-1])
}

func TestLoopDeviceRouting(t *testing.T) {
	l := newLoop()
	dev := l.Registry.RegisterDevice(0xd1)
	rec := &recorder{}

	ev := events.NewWindowEvent(events.DeviceAdded, 0)
	ev.SetDevice(dev)
	l.Enqueue(ev)

	require.NoError(t, l.Pump(rec, 0))
	assert.Contains(t, rec.log, "DeviceAdded(dev 1)")
}

// Canceled events stay in the queue but are skipped at delivery.
func TestLoopCanceledSkipped(t *testing.T) {
	l := newLoop()
	win := l.Registry.RegisterWindow(1)
	rec := &recorder{}

	ev := events.NewWindowEvent(events.WindowFocus, win)
	l.Enqueue(ev)
	ev.SetCanceled()

	require.NoError(t, l.Pump(rec, 0))
	assert.NotContains(t, rec.log, "WindowFocus(1)")
}

func TestLoopCompression(t *testing.T) {
	l := newLoop()
	l.CompressEvents = true
	win := l.Registry.RegisterWindow(1)
	rec := &recorder{}
	var moves []*events.Mouse
	rec.onWindow = func(w events.WindowID, ev events.Event) {
		if mv, ok := ev.(*events.Mouse); ok && mv.Type() == events.MouseMove {
			moves = append(moves, mv)
		}
	}

	for i := 1; i <= 4; i++ {
		mv := events.NewMouseMove(events.MouseMove, events.NoButton,
			image.Pt(i*10, 0), image.Pt((i-1)*10, 0), 0)
		mv.SetWindow(win)
		mv.Init()
		l.Enqueue(mv)
	}

	require.NoError(t, l.Pump(rec, 0))
	require.Len(t, moves, 1)
	assert.Equal(t, image.Pt(40, 0), moves[0].Pos())
	assert.Equal(t, image.Pt(0, 0), moves[0].Prev, "compressed run spans the full delta")
}
