// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"sync/atomic"
	"time"

	"github.com/windkit/wind/events"
	"github.com/windkit/wind/logx"
	"github.com/windkit/wind/system"
)

// stages is the lifecycle of a Loop: created once, running while
// iterating, destroyed after exit. A destroyed loop can never run again.
type stages int32

const (
	stageCreated stages = iota
	stageRunning
	stageDestroyed
)

// Loop is the event queue, dispatcher, and control-flow scheduler all
// drivers share. Exactly one goroutine (the loop thread) owns it: all
// ingestion methods (Enqueue, RequestRedraw, DestroyWindow) and all
// handler callbacks happen on that thread, so the queue, registry, and
// scheduler state need no locking. The only cross-thread surfaces are
// the [Proxy] and [Loop.SendExternal].
//
// One iteration delivers, in order: NewEvents(cause), user values and
// the collapsed ProxyWakeUp, all queued window and device events (FIFO,
// including events enqueued reentrantly by the callbacks themselves),
// pending WindowDestroy notifications, AboutToWait, and finally one
// coalesced WindowPaint per window with a pending redraw. Then the
// control flow set by the application during delivery is read once and
// applied.
type Loop struct {

	// Handler is the application callback surface for the current run.
	Handler system.Handler

	// Registry resolves window and device identities.
	Registry Registry

	// CompressEvents coalesces a non-unique event into an immediately
	// preceding undelivered event of the same type and window (pointer
	// moves, scrolls, live resizes).
	CompressEvents bool

	// external is the cross-thread ingestion queue, drained into the
	// loop-thread queue at the start of every iteration.
	external events.Queue

	proxy Proxy
	wake  chan struct{}

	// queue is the loop-thread FIFO. drained indexes the next
	// undelivered event during a drain pass, so reentrant enqueues
	// append and compression never touches delivered slots.
	queue   []events.Event
	drained int

	flow     system.ControlFlow
	stage    stages
	exitCode int

	// quit is the cross-thread exit request; SetFlow is loop thread
	// only, so Quit latches here and the loop folds it in.
	quit atomic.Bool

	redraw   []events.WindowID
	destroys []events.WindowID
}

// Init prepares the loop for use.
func (l *Loop) Init() {
	l.Registry.Init()
	l.external.Init()
	l.wake = make(chan struct{}, 1)
	l.proxy.init(l.wakeUp)
}

// Proxy returns the loop's thread-safe proxy handle.
func (l *Loop) Proxy() *Proxy {
	return &l.proxy
}

// wakeUp re-arms a blocked wait. Callable from any thread; calls while
// the loop is awake leave a single pending wake.
func (l *Loop) wakeUp() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// SetFlow sets the control flow applied at the end of the current
// iteration. Called by the application during event delivery.
func (l *Loop) SetFlow(cf system.ControlFlow) {
	if l.stage == stageDestroyed {
		return
	}
	// exit is a latch: once requested it cannot be downgraded
	if l.flow.Mode == system.FlowExit && cf.Mode != system.FlowExit {
		return
	}
	l.flow = cf
}

// Flow returns the currently requested control flow.
func (l *Loop) Flow() system.ControlFlow {
	return l.flow
}

// Exit requests a clean end of the loop with the given code, honored at
// the end of the current iteration.
func (l *Loop) Exit(code int) {
	l.SetFlow(system.Exit(code))
}

// Quit requests a clean exit with code 0. Unlike SetFlow it is callable
// from any thread.
func (l *Loop) Quit() {
	l.quit.Store(true)
	l.wakeUp()
}

// exitRequested reports whether delivery must stop: the application has
// requested exit or the loop is already destroyed. Checked before every
// callback, so no window or device event follows an Exit request,
// within the same iteration or any later one.
func (l *Loop) exitRequested() bool {
	if l.quit.Load() && l.flow.Mode != system.FlowExit {
		l.flow = system.Exit(0)
	}
	return l.stage == stageDestroyed || l.flow.Mode == system.FlowExit
}

// Enqueue pushes one canonical event onto the dispatch queue. Loop
// thread only; safe to call reentrantly from inside a handler callback,
// in which case the event is delivered later in the same drain pass.
// Events for unknown or destroyed windows are dropped. WindowPaint
// events are not queued: they divert to the redraw coalescer.
func (l *Loop) Enqueue(ev events.Event) {
	if l.stage == stageDestroyed {
		return
	}
	if win := ev.Window(); win != 0 && !l.Registry.WindowLive(win) {
		logx.Debug("dropping event for dead window", "event", ev)
		return
	}
	if ev.Type() == events.WindowPaint {
		l.RequestRedraw(ev.Window())
		return
	}
	if l.CompressEvents && l.compress(ev) {
		return
	}
	l.queue = append(l.queue, ev)
}

// compress tries to coalesce ev into the last undelivered queued event.
// Only non-unique events of the same type and window qualify.
func (l *Loop) compress(ev events.Event) bool {
	if ev.IsUnique() || len(l.queue) <= l.drained {
		return false
	}
	last := l.queue[len(l.queue)-1]
	if last.Type() != ev.Type() || last.Window() != ev.Window() {
		return false
	}
	switch pv := last.(type) {
	case *events.MouseScroll:
		nv, ok := ev.(*events.MouseScroll)
		if !ok {
			return false
		}
		nv.Delta = pv.Delta.Add(nv.Delta)
	case *events.Mouse:
		nv, ok := ev.(*events.Mouse)
		if !ok || nv.Button != pv.Button {
			return false
		}
		// keep the earliest previous position so deltas span the
		// whole compressed run
		nv.Prev = pv.Prev
		nv.Start = pv.Start
	case *events.WindowResizeEvent, *events.WindowMoveEvent:
		// last value wins
	default:
		return false
	}
	l.queue[len(l.queue)-1] = ev
	return true
}

// SendExternal pushes one event from another thread, waking the loop.
// The event joins the queue at the start of the next iteration.
func (l *Loop) SendExternal(ev events.Event) {
	l.external.Send(ev)
	l.wakeUp()
}

// RequestRedraw schedules exactly one WindowPaint for the window at the
// end of the current (or next) iteration, no matter how many times it
// is called before then. Requests made while delivering that paint are
// deferred to the next iteration.
func (l *Loop) RequestRedraw(win events.WindowID) {
	if !l.Registry.WindowLive(win) {
		return
	}
	for _, w := range l.redraw {
		if w == win {
			return
		}
	}
	l.redraw = append(l.redraw, win)
}

// DestroyWindow tombstones the window: events already queued for it are
// still delivered this iteration, then a final WindowDestroy is emitted
// and the id is retired. Idempotent.
func (l *Loop) DestroyWindow(win events.WindowID) {
	if !l.Registry.UnregisterWindow(win) {
		return
	}
	l.destroys = append(l.destroys, win)
}

// Run drives the loop with the given handler until the application
// requests exit. It returns nil on a clean exit, an [*system.ExitError]
// for a nonzero exit code, and [system.ErrRecreation] if the loop has
// already run to completion.
func (l *Loop) Run(h system.Handler) error {
	if err := l.start(h); err != nil {
		return err
	}
	cause := system.StartCause{Cause: system.CauseInit}
	for {
		l.iterate(cause)
		if l.exitRequested() {
			return l.finish()
		}
		cause = l.waitNext(-1)
	}
}

// Pump runs a single iteration, first blocking up to timeout for a wake
// if the control flow calls for waiting (negative means wait without
// limit, zero means do not block). It returns nil while the loop is
// still live, the final run result once the application exits during
// the pump, and [system.ErrRecreation] on any call after that. This is
// the cooperative re-pumping mode for hosts that own the outer loop.
func (l *Loop) Pump(h system.Handler, timeout time.Duration) error {
	var cause system.StartCause
	switch l.stage {
	case stageDestroyed:
		return system.ErrRecreation
	case stageCreated:
		if err := l.start(h); err != nil {
			return err
		}
		cause = system.StartCause{Cause: system.CauseInit}
	default:
		l.Handler = h
		cause = l.waitNext(timeout)
	}
	l.iterate(cause)
	if l.exitRequested() {
		return l.finish()
	}
	return nil
}

func (l *Loop) start(h system.Handler) error {
	if l.stage != stageCreated {
		return system.ErrRecreation
	}
	l.stage = stageRunning
	l.Handler = h
	return nil
}

// iterate runs one full scheduler iteration with the given cause.
func (l *Loop) iterate(cause system.StartCause) {
	l.Handler.NewEvents(cause)
	if cause.Cause == system.CauseInit {
		l.Handler.CanCreateSurfaces()
		l.Handler.Resumed()
	}
	l.deliverProxy()
	l.drainExternal()
	l.drain()
	l.processDestroys()
	if l.exitRequested() {
		return
	}
	l.Handler.AboutToWait()
	l.deliverRedraws()
}

// deliverProxy drains queued user values and collapses any number of
// proxy wakes since the last iteration into one ProxyWakeUp.
func (l *Loop) deliverProxy() {
	woken := l.proxy.takeWake()
	uh, typed := l.Handler.(system.UserHandler)
	for {
		data, ok := l.proxy.nextUser()
		if !ok {
			break
		}
		woken = true
		if typed && !l.exitRequested() {
			uh.UserEvent(data)
		}
	}
	if woken && !l.exitRequested() {
		l.Handler.ProxyWakeUp()
	}
}

func (l *Loop) drainExternal() {
	for {
		ev := l.external.NextEvent()
		if ev == nil {
			return
		}
		l.Enqueue(ev)
	}
}

// drain delivers every queued event in FIFO order. Events enqueued by
// the callbacks during the pass are appended and delivered in the same
// pass, never reordered and never deferred.
func (l *Loop) drain() {
	for l.drained < len(l.queue) {
		ev := l.queue[l.drained]
		l.queue[l.drained] = nil
		l.drained++
		l.deliver(ev)
	}
	l.queue = l.queue[:0]
	l.drained = 0
}

// deliver routes one event to the handler, unless exit has been
// requested or the event was revoked while queued.
func (l *Loop) deliver(ev events.Event) {
	if l.exitRequested() || ev.IsCanceled() {
		return
	}
	typ := ev.Type()
	if typ.IsDevice() || (ev.Window() == 0 && ev.Device() != 0) {
		l.Handler.DeviceEvent(ev.Device(), ev)
		return
	}
	win := ev.Window()
	switch typ {
	case events.WindowFocus:
		l.Registry.SetFocused(win, true)
	case events.WindowFocusLost:
		l.Registry.SetFocused(win, false)
	}
	l.Handler.WindowEvent(win, ev)
}

// processDestroys emits the final WindowDestroy for each window
// tombstoned this iteration and purges its id. A destroy callback may
// itself destroy further windows; those are handled in the same pass.
func (l *Loop) processDestroys() {
	for len(l.destroys) > 0 {
		wins := l.destroys
		l.destroys = nil
		for _, win := range wins {
			ev := events.NewWindowEvent(events.WindowDestroy, win)
			ev.Init()
			l.deliver(ev)
			l.Registry.PurgeWindow(win)
		}
	}
}

// deliverRedraws sends one WindowPaint per window with a pending
// redraw. The pending set is taken first, so requests made during
// paint delivery land in the next iteration.
func (l *Loop) deliverRedraws() {
	pend := l.redraw
	l.redraw = nil
	for _, win := range pend {
		if !l.Registry.WindowLive(win) {
			continue
		}
		ev := events.NewWindowEvent(events.WindowPaint, win)
		ev.Init()
		l.deliver(ev)
	}
}

// waitNext blocks per the current control flow until the next iteration
// should run, returning its cause. limit bounds the block regardless of
// flow (negative means no bound); a limit cut-off reports WaitCancelled.
func (l *Loop) waitNext(limit time.Duration) system.StartCause {
	if l.flow.Mode == system.FlowPoll {
		return system.StartCause{Cause: system.CausePoll}
	}

	start := time.Now()
	sc := system.StartCause{Cause: system.CauseWaitCancelled, Start: start}

	var deadline <-chan time.Time
	if l.flow.Mode == system.FlowWaitUntil {
		sc.RequestedResume = l.flow.Deadline
		if !l.flow.Deadline.After(start) {
			// a deadline already in the past never blocks
			sc.Cause = system.CauseResumeTimeReached
			return sc
		}
		t := time.NewTimer(time.Until(l.flow.Deadline))
		defer t.Stop()
		deadline = t.C
	}

	var cutoff <-chan time.Time
	if limit >= 0 {
		t := time.NewTimer(limit)
		defer t.Stop()
		cutoff = t.C
	}

	select {
	case <-l.wake:
	case <-deadline:
		sc.Cause = system.CauseResumeTimeReached
	case <-cutoff:
	}
	return sc
}

// finish destroys the loop: the proxy is closed, surfaces are released,
// and the mandatory final LoopExiting is delivered. No callback ever
// follows it.
func (l *Loop) finish() error {
	if l.stage == stageDestroyed {
		return system.ErrRecreation
	}
	l.exitCode = l.flow.Code
	l.stage = stageDestroyed
	l.proxy.close()
	l.Handler.DestroySurfaces()
	l.Handler.LoopExiting()
	logx.Debug("event loop exited", "code", l.exitCode)
	if l.exitCode != 0 {
		return &system.ExitError{Code: l.exitCode}
	}
	return nil
}

// Suspend delivers the Suspended lifecycle callback. Loop thread only;
// used by backends whose platform reclaims surfaces in the background.
func (l *Loop) Suspend() {
	if l.stage == stageRunning && !l.exitRequested() {
		l.Handler.DestroySurfaces()
		l.Handler.Suspended()
	}
}

// Resume delivers the Resumed lifecycle callback after a Suspend.
func (l *Loop) Resume() {
	if l.stage == stageRunning && !l.exitRequested() {
		l.Handler.Resumed()
	}
}

// MemoryWarning forwards an OS memory-pressure report.
func (l *Loop) MemoryWarning() {
	if l.stage == stageRunning && !l.exitRequested() {
		l.Handler.MemoryWarning()
	}
}
