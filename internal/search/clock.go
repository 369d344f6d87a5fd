// Package search implements a generic iterative-deepening alpha-beta
// expectiminimax engine, game-agnostic over a small Game capability
// bundle. Grounded on engine/time_control.go (deadline bookkeeping) and
// engine/engine.go (iterative deepening over a principal-variation
// search); the expectiminimax dispatch and action ordering are grounded
// on original_source/client/minimax.hpp.
package search

import (
	"sync"
	"time"
)

// atomicFlag is a one-way-settable atomic bool, grounded on
// engine/time_control.go's atomicFlag.
type atomicFlag struct {
	mu   sync.Mutex
	flag bool
}

func (af *atomicFlag) set() {
	af.mu.Lock()
	af.flag = true
	af.mu.Unlock()
}

func (af *atomicFlag) get() bool {
	af.mu.Lock()
	v := af.flag
	af.mu.Unlock()
	return v
}

// DeadlineClock answers "is time up?" cheaply and monotonically: once
// Expired returns true it never returns false again. It is not
// copyable; hold it by pointer.
type DeadlineClock struct {
	deadline time.Time
	expired  atomicFlag
}

// NewDeadlineClock starts a clock that expires budget after now.
func NewDeadlineClock(budget time.Duration) *DeadlineClock {
	return &DeadlineClock{deadline: time.Now().Add(budget)}
}

// Expired reports whether the budget has elapsed, memoizing the first
// true observation.
func (c *DeadlineClock) Expired() bool {
	if c.expired.get() {
		return true
	}
	if time.Now().After(c.deadline) {
		c.expired.set()
		return true
	}
	return false
}
