// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"sync/atomic"

	"github.com/windkit/wind/events"
	"github.com/windkit/wind/system"
)

// Proxy is the thread-safe handle to a [Loop]. It is the only state in
// the core that non-loop threads may touch: a collapsing wake flag and
// a lock-free queue of user values. It implements [system.Proxy].
type Proxy struct {
	woken  atomic.Bool
	closed atomic.Bool
	users  events.Queue

	// wake re-arms the loop's wait; set by the owning Loop.
	wake func()
}

func (p *Proxy) init(wake func()) {
	p.users.Init()
	p.wake = wake
}

// WakeUp forces the loop to run an iteration. Callable from any thread,
// never blocks. Any number of calls before the loop next wakes collapse
// into a single ProxyWakeUp callback. After the loop is destroyed it is
// a no-op.
func (p *Proxy) WakeUp() {
	if p.closed.Load() {
		return
	}
	p.woken.Store(true)
	p.wake()
}

// Send injects a typed user value, delivered on the loop thread via
// [system.UserHandler.UserEvent]. Unlike WakeUp it reports failure:
// after the loop is destroyed it returns [system.ErrLoopClosed] so the
// caller can reclaim the value.
func (p *Proxy) Send(data any) error {
	if p.closed.Load() {
		return system.ErrLoopClosed
	}
	p.users.Send(events.NewCustom(data))
	p.wake()
	return nil
}

// takeWake consumes the collapsed wake flag. Loop thread only.
func (p *Proxy) takeWake() bool {
	return p.woken.Swap(false)
}

// nextUser pops the next queued user value. Loop thread only.
func (p *Proxy) nextUser() (any, bool) {
	ev := p.users.NextEvent()
	if ev == nil {
		return nil, false
	}
	return ev.(*events.CustomEvent).Data, true
}

// close marks the owning loop destroyed. Queued values never delivered
// are dropped.
func (p *Proxy) close() {
	p.closed.Store(true)
}
