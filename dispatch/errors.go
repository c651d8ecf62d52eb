// SPDX-License-Identifier: MIT
// Package dispatch: sentinel error set.

package dispatch

import "errors"

var (
	// ErrTaskFailed marks the failure of a dispatched batch. The first failing
	// task's own error (or recovered panic) is wrapped alongside it, so both
	// errors.Is(err, ErrTaskFailed) and errors.Is(err, <task error>) hold.
	ErrTaskFailed = errors.New("dispatch: task failed")

	// ErrClosed is returned when work is submitted to a closed Dispatcher.
	ErrClosed = errors.New("dispatch: dispatcher is closed")
)
