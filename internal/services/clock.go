package services

import "github.com/jonboulle/clockwork"

// clock is the time source for report timestamps, alert events and the
// dashboard snapshot. Tests freeze it with SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
