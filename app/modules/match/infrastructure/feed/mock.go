package matchfeed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	sharedutils "github.com/matchday-club/predictor/app/shared/utils"
)

var clubSuffixes = []string{"FC", "United", "City", "Rovers", "Athletic", "Wanderers"}

// MockSource fabricates a round of fixtures. Used when no real feed is
// configured, and in tests. A fixed seed yields a reproducible schedule.
type MockSource struct {
	faker *gofakeit.Faker
	clock sharedutils.Clock

	// FixtureCount is how many fixtures one fetch produces.
	FixtureCount int
}

var _ Source = (*MockSource)(nil)

// NewMockSource creates a mock feed. Pass seed 0 for a random schedule.
func NewMockSource(seed uint64, clock sharedutils.Clock) *MockSource {
	return &MockSource{
		faker:        gofakeit.New(seed),
		clock:        clock,
		FixtureCount: 10,
	}
}

func (m *MockSource) FetchFixtures(ctx context.Context) ([]Fixture, error) {
	now := m.clock.NowUTC()
	round := fmt.Sprintf("Matchday %d", m.faker.Number(1, 38))

	fixtures := make([]Fixture, 0, m.FixtureCount)
	for i := 0; i < m.FixtureCount; i++ {
		home := m.clubName()
		away := m.clubName()
		for away == home {
			away = m.clubName()
		}

		// Kickoffs spread over the coming week, on the hour.
		offset := time.Duration(m.faker.Number(1, 7*24)) * time.Hour
		kickoff := now.Truncate(time.Hour).Add(offset)

		fixtures = append(fixtures, Fixture{
			HomeTeam:    home,
			AwayTeam:    away,
			KickoffTime: kickoff,
			Round:       round,
			Venue:       fmt.Sprintf("%s Stadium", m.faker.City()),
		})
	}
	return fixtures, nil
}

func (m *MockSource) clubName() string {
	return fmt.Sprintf("%s %s", m.faker.City(), m.faker.RandomString(clubSuffixes))
}
