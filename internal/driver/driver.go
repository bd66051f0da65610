// Package driver schedules the per-tick callback. The Loop type is the
// blocking flavor with a fixed inter-tick delay; windowed front ends
// act as host-paced drivers of their own, invoking the callback at the
// display refresh rate and discarding any interval.
package driver

import "time"

// Driver invokes a callback repeatedly until the callback asks to stop
// or Stop is called.
type Driver interface {
	Run(tick func() bool, interval time.Duration)
	Stop()
}

// Loop is a blocking frame driver: one callback invocation, then a
// fixed sleep, until stopped.
type Loop struct {
	stop chan struct{}
}

func NewLoop() *Loop {
	return &Loop{stop: make(chan struct{})}
}

// Run blocks, invoking tick every interval until tick returns false or
// Stop is called. A stop request is observed between ticks; an
// in-flight tick always runs to completion.
func (l *Loop) Run(tick func() bool, interval time.Duration) {
	for {
		select {
		case <-l.stop:
			return
		default:
		}

		if !tick() {
			return
		}

		if interval > 0 {
			select {
			case <-l.stop:
				return
			case <-time.After(interval):
			}
		}
	}
}

// Stop signals the driver to exit after the current callback returns.
// Safe to call at most once.
func (l *Loop) Stop() {
	close(l.stop)
}
