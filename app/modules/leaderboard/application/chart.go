package leaderboardservice

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
)

// chartTopN caps how many users fit on the bar chart before labels collide.
const chartTopN = 10

// RenderChart writes a PNG bar chart of the top standings.
func (s *LeaderboardService) RenderChart(ctx context.Context, w io.Writer) error {
	_, err := withTelemetry(s, ctx, "render_leaderboard_chart", func(ctx context.Context) (struct{}, error) {
		leaderboard, err := s.GetLeaderboard(ctx, uuid.Nil)
		if err != nil {
			return struct{}{}, err
		}

		entries := leaderboard.Entries
		if len(entries) > chartTopN {
			entries = entries[:chartTopN]
		}

		bars := make([]chart.Value, 0, len(entries))
		for _, entry := range entries {
			bars = append(bars, chart.Value{
				Label: entry.UserName,
				Value: float64(entry.TotalPoints),
			})
		}
		if len(bars) == 0 {
			// BarChart refuses to render zero bars; show an empty axis instead.
			bars = append(bars, chart.Value{Label: "", Value: 0})
		}

		graph := chart.BarChart{
			Title:    "Prediction Pool Standings",
			Width:    800,
			Height:   400,
			BarWidth: 50,
			Bars:     bars,
		}

		if err := graph.Render(chart.PNG, w); err != nil {
			return struct{}{}, fmt.Errorf("failed to render chart: %w", err)
		}
		return struct{}{}, nil
	})
	return err
}
