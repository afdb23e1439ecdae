// Package clock abstracts the time operations used by the advisory
// debounce and the order store, so tests can drive them deterministically.
package clock

import "time"

// Clock is injected wherever code needs the current time or a delayed
// callback. Production wiring uses Real(); tests use Fake().
type Clock interface {
	Now() time.Time

	// AfterFunc calls f once d has elapsed. The returned Timer can cancel
	// the pending call.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the Timer from firing. It reports whether the call was
// still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.stopFunc == nil {
		return false
	}
	return t.stopFunc()
}
