package flow

import "time"

// Scheduler defers a function call. The controller never blocks on
// deferred work; tests substitute a manual implementation and fire
// callbacks themselves.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// WallClock schedules on real timers.
var WallClock Scheduler = wallScheduler{}
