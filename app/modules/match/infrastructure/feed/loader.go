package matchfeed

import (
	"context"
	"log/slog"

	matchservice "github.com/matchday-club/predictor/app/modules/match/application"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	"github.com/matchday-club/predictor/app/shared/attr"
)

// Loader seeds the pool from a feed source when no fixtures exist yet.
type Loader struct {
	source  Source
	matches matchservice.Service
	logger  *slog.Logger
}

func NewLoader(source Source, matches matchservice.Service, logger *slog.Logger) *Loader {
	return &Loader{source: source, matches: matches, logger: logger}
}

// SeedIfEmpty imports the source's fixtures unless the pool already has any.
// Returns how many fixtures were created.
func (l *Loader) SeedIfEmpty(ctx context.Context) (int, error) {
	_, total, err := l.matches.ListMatches(ctx, matchtypes.MatchFilter{Limit: 1})
	if err != nil {
		return 0, err
	}
	if total > 0 {
		l.logger.DebugContext(ctx, "Pool already has fixtures, skipping seed",
			attr.Int("existing", total),
		)
		return 0, nil
	}

	fixtures, err := l.source.FetchFixtures(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, fixture := range fixtures {
		_, err := l.matches.CreateMatch(ctx, matchservice.CreateMatchInput{
			HomeTeam:    fixture.HomeTeam,
			AwayTeam:    fixture.AwayTeam,
			KickoffTime: fixture.KickoffTime,
			Round:       fixture.Round,
			Venue:       fixture.Venue,
		})
		if err != nil {
			l.logger.WarnContext(ctx, "Failed to import fixture, skipping",
				attr.String("home_team", fixture.HomeTeam),
				attr.String("away_team", fixture.AwayTeam),
				attr.Error(err),
			)
			continue
		}
		created++
	}

	l.logger.InfoContext(ctx, "Seeded pool from feed",
		attr.Int("created", created),
		attr.Int("offered", len(fixtures)),
	)
	return created, nil
}
