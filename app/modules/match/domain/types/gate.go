package matchtypes

import "time"

// GateState says whether predictions for a match may still be created or
// modified. The gate only cares about kickoff: a Live or Finished match is
// Locked by construction because its kickoff is in the past.
type GateState string

const (
	GateOpen   GateState = "OPEN"
	GateLocked GateState = "LOCKED"
)

// Gate returns Locked when now >= kickoff, Open otherwise. Pure function of two
// timestamps; callers sample now once per request and reuse it for every check
// in that request.
func Gate(now, kickoff time.Time) GateState {
	if !now.Before(kickoff) {
		return GateLocked
	}
	return GateOpen
}

// TimeRemaining is the countdown to kickoff for display. Components are never
// negative; once kickoff has passed, Expired is set and components are zero.
type TimeRemaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// RemainingUntil decomposes the delta between now and kickoff.
func RemainingUntil(now, kickoff time.Time) TimeRemaining {
	delta := kickoff.Sub(now)
	if delta <= 0 {
		return TimeRemaining{Expired: true}
	}

	total := int(delta.Seconds())
	return TimeRemaining{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}
