package leaderboardservice

import (
	"context"
	"sort"

	"github.com/google/uuid"
	leaderboardtypes "github.com/matchday-club/predictor/app/modules/leaderboard/domain/types"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
)

// GetLeaderboard builds the current standings from every user and prediction.
//
// Ordering: most points first; among equal points, fewer predictions ranks
// higher (same return from fewer guesses); name breaks the remaining ties so
// the order is stable across requests. Ranks are 1-based positions in that
// order: even fully tied records get distinct consecutive ranks.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, forUser uuid.UUID) (*leaderboardtypes.Leaderboard, error) {
	return withTelemetry(s, ctx, "get_leaderboard", func(ctx context.Context) (*leaderboardtypes.Leaderboard, error) {
		users, err := s.userRepo.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		predictions, err := s.predictionRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}

		byUser := make(map[uuid.UUID]*leaderboardtypes.Entry, len(users))
		entries := make([]leaderboardtypes.Entry, 0, len(users))
		for _, user := range users {
			entries = append(entries, leaderboardtypes.Entry{
				UserID:     user.ID,
				UserName:   user.Name,
				Department: user.Department,
			})
		}
		for i := range entries {
			byUser[entries[i].UserID] = &entries[i]
		}

		for i := range predictions {
			p := &predictions[i]
			entry, ok := byUser[p.UserID]
			if !ok {
				// Prediction from a user the profile mirror has not seen yet;
				// it will appear once the mirror catches up.
				continue
			}
			entry.TotalPredictions++
			entry.TotalPoints += p.Points
			if p.Points == predictiontypes.PointsExact {
				entry.ExactScores++
			}
			if p.Points >= predictiontypes.PointsCorrectWinner {
				entry.CorrectWinners++
			}
		}

		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].TotalPoints != entries[j].TotalPoints {
				return entries[i].TotalPoints > entries[j].TotalPoints
			}
			if entries[i].TotalPredictions != entries[j].TotalPredictions {
				return entries[i].TotalPredictions < entries[j].TotalPredictions
			}
			return entries[i].UserName < entries[j].UserName
		})

		for i := range entries {
			entries[i].Rank = i + 1
		}

		leaderboard := &leaderboardtypes.Leaderboard{Entries: entries}
		if forUser != uuid.Nil {
			for i := range entries {
				if entries[i].UserID == forUser {
					own := entries[i]
					leaderboard.UserEntry = &own
					break
				}
			}
		}
		return leaderboard, nil
	})
}
