// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"time"
)

// Flows enumerates the control-flow modes the application can request
// for the interval between loop iterations.
type Flows int32

const (
	// FlowWait blocks until an external wake source fires (an event
	// arrives or the proxy wakes the loop). The default.
	FlowWait Flows = iota

	// FlowPoll re-runs the loop immediately after the current
	// iteration, whether or not new events are available.
	FlowPoll

	// FlowWaitUntil blocks until either an external wake source fires
	// or the deadline is reached, whichever comes first.
	FlowWaitUntil

	// FlowExit ends the loop at the end of the current iteration;
	// in-flight event delivery for the batch completes first.
	FlowExit

	// FlowsN is the number of control flow modes.
	FlowsN
)

var flowNames = [FlowsN]string{"Wait", "Poll", "WaitUntil", "Exit"}

func (f Flows) String() string {
	if f < 0 || f >= FlowsN {
		return "Unknown"
	}
	return flowNames[f]
}

// ControlFlow is the scheduler state dictating blocking behavior between
// loop iterations. It is set by the application during event delivery
// and read by the scheduler once per iteration, after the batch is
// fully delivered. The zero value is Wait.
type ControlFlow struct {

	// Mode is the requested flow mode.
	Mode Flows

	// Deadline is the resume time for FlowWaitUntil.
	Deadline time.Time

	// Code is the process exit code for FlowExit.
	Code int
}

// Wait returns a ControlFlow that blocks until an external wake.
func Wait() ControlFlow {
	return ControlFlow{Mode: FlowWait}
}

// Poll returns a ControlFlow that re-runs the loop immediately.
func Poll() ControlFlow {
	return ControlFlow{Mode: FlowPoll}
}

// WaitUntil returns a ControlFlow that blocks until the given deadline
// or an earlier external wake. A deadline in the past causes the next
// iteration to run immediately with cause [CauseResumeTimeReached].
func WaitUntil(deadline time.Time) ControlFlow {
	return ControlFlow{Mode: FlowWaitUntil, Deadline: deadline}
}

// WaitDuration returns a ControlFlow that waits until the given timeout
// has expired. If the deadline overflows it degrades to plain Wait.
func WaitDuration(timeout time.Duration) ControlFlow {
	deadline := time.Now().Add(timeout)
	if timeout > 0 && deadline.Before(time.Now()) {
		return Wait()
	}
	return WaitUntil(deadline)
}

// Exit returns a ControlFlow that ends the loop at the end of the
// current iteration with the given exit code.
func Exit(code int) ControlFlow {
	return ControlFlow{Mode: FlowExit, Code: code}
}

func (cf ControlFlow) String() string {
	switch cf.Mode {
	case FlowWaitUntil:
		return fmt.Sprintf("WaitUntil(%v)", cf.Deadline.Format("04:05.000"))
	case FlowExit:
		return fmt.Sprintf("Exit(%d)", cf.Code)
	}
	return cf.Mode.String()
}

// StartCauses enumerates why a loop iteration is running.
type StartCauses int32

const (
	// CauseInit is sent once for the first iteration after the loop
	// starts.
	CauseInit StartCauses = iota

	// CausePoll is sent when the loop re-runs after FlowPoll.
	CausePoll

	// CauseWaitCancelled is sent when an external wake arrived while
	// the loop was blocked in Wait or WaitUntil, before any requested
	// resume time.
	CauseWaitCancelled

	// CauseResumeTimeReached is sent when the WaitUntil deadline was
	// reached. The actual resume time is at or after the requested one.
	CauseResumeTimeReached

	// StartCausesN is the number of start causes.
	StartCausesN
)

var causeNames = [StartCausesN]string{
	"Init", "Poll", "WaitCancelled", "ResumeTimeReached",
}

func (c StartCauses) String() string {
	if c < 0 || c >= StartCausesN {
		return "Unknown"
	}
	return causeNames[c]
}

// StartCause describes the reason a loop iteration is running, passed
// to [Handler.NewEvents] at the start of every iteration.
type StartCause struct {

	// Cause is why this iteration runs.
	Cause StartCauses

	// Start is when the preceding wait began. Zero for Init and Poll.
	Start time.Time

	// RequestedResume is the WaitUntil deadline in effect during the
	// preceding wait, if any. For CauseResumeTimeReached it is the
	// deadline that fired; for CauseWaitCancelled it is the deadline
	// that had not yet been reached. Zero if no deadline was set.
	RequestedResume time.Time
}

func (sc StartCause) String() string {
	if !sc.RequestedResume.IsZero() {
		return fmt.Sprintf("%v{RequestedResume: %v}", sc.Cause, sc.RequestedResume.Format("04:05.000"))
	}
	return sc.Cause.String()
}
