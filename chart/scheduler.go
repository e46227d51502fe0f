package chart

import "time"

// Scheduler runs deferred callbacks. Scheduled callbacks cannot be cancelled;
// when two overlap, the one that runs last wins.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler runs callbacks on their own goroutine via [time.AfterFunc].
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
