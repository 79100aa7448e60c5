package sharedutils

import "time"

// Clock abstracts wall-clock access so gate decisions can be tested
// deterministically. Callers sample Now once per request and thread the value
// through; they must not re-read the clock mid-decision.
type Clock interface {
	Now() time.Time
	NowUTC() time.Time
	After(d time.Duration) <-chan time.Time
	Sleep(d time.Duration)
}

// RealClock delegates to the time package.
type RealClock struct{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) NowUTC() time.Time                      { return time.Now().UTC() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (RealClock) Sleep(d time.Duration)                  { time.Sleep(d) }
