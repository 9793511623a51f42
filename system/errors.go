// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"errors"
	"fmt"
)

var (
	// ErrRecreation is returned when an event loop that has already
	// run to completion is started again. An event loop is single-use
	// across its full lifetime; cooperative re-pumping before Exit is
	// allowed, running again after Exit is not.
	ErrRecreation = errors.New("event loop already exited and cannot be reused")

	// ErrNotSupported is returned synchronously when a capability the
	// active backend does not implement is requested.
	ErrNotSupported = errors.New("not supported on this backend")

	// ErrLoopClosed is returned by proxy operations that must report
	// failure (typed sends) after the owning loop has been destroyed.
	// Bare WakeUp calls become silent no-ops instead.
	ErrLoopClosed = errors.New("event loop closed")
)

// OSError wraps a failure reported by a platform collaborator while
// issuing a native call on the core's behalf. It is surfaced to the
// application as the result of the specific request that triggered it,
// never as a silent drop.
type OSError struct {

	// Op is the request that failed, e.g. "NewWindow".
	Op string

	// Err is the underlying platform error.
	Err error
}

func (e *OSError) Error() string {
	return fmt.Sprintf("os error in %s: %v", e.Op, e.Err)
}

func (e *OSError) Unwrap() error {
	return e.Err
}

// ExitError is returned from the loop run entry point when the
// application exited with a nonzero code.
type ExitError struct {

	// Code is the exit code passed to [Exit].
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("event loop exited with status %d", e.Code)
}
