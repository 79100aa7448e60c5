// Package matchfeed supplies fixtures from an external source. The only
// shipped implementation generates mock data; a real provider plugs in behind
// the same interface.
package matchfeed

import (
	"context"
	"time"
)

// Fixture is a match as delivered by a feed, before it has an identity in the
// pool.
type Fixture struct {
	HomeTeam    string
	AwayTeam    string
	KickoffTime time.Time
	Round       string
	Venue       string
}

// Source delivers upcoming fixtures.
type Source interface {
	// FetchFixtures returns the fixtures the feed currently knows about.
	FetchFixtures(ctx context.Context) ([]Fixture, error)
}
