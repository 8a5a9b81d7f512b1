package dashboard

import "time"

// Scheduler runs f once after d unless the returned Timer is stopped first.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler schedules on the wall clock.
func RealScheduler() Scheduler {
	return clockScheduler{}
}
