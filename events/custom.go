// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// CustomEvent is a user-specified event that can be sent and received
// as needed, with a Data field for arbitrary data. It is the carrier
// for typed values injected through the loop proxy.
type CustomEvent struct {
	Base

	// Data is the arbitrary user payload.
	Data any
}

// NewCustom returns a new custom event with the given data.
func NewCustom(data any) *CustomEvent {
	ev := &CustomEvent{}
	ev.Typ = Custom
	ev.SetUnique()
	ev.Data = data
	return ev
}

func (ev *CustomEvent) String() string {
	return fmt.Sprintf("%v{Data: %v, Time: %v}", ev.Type(), ev.Data, ev.Time().Format("04:05"))
}
