package host

import "time"

// Timer is a cancelable scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock schedules animation ticks. Progress advances through AfterFunc
// callbacks, never by polling.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// SystemClock is the wall-clock Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
