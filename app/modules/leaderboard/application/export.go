package leaderboardservice

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Leaderboard"

var exportHeader = []string{"Rank", "Name", "Department", "Points", "Predictions", "Exact Scores", "Correct Winners"}

// ExportXLSX writes the current standings as a spreadsheet.
func (s *LeaderboardService) ExportXLSX(ctx context.Context, w io.Writer) error {
	_, err := withTelemetry(s, ctx, "export_leaderboard_xlsx", func(ctx context.Context) (struct{}, error) {
		leaderboard, err := s.GetLeaderboard(ctx, uuid.Nil)
		if err != nil {
			return struct{}{}, err
		}

		f := excelize.NewFile()
		defer f.Close()

		if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
			return struct{}{}, fmt.Errorf("failed to rename sheet: %w", err)
		}

		for col, title := range exportHeader {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return struct{}{}, err
			}
			if err := f.SetCellValue(exportSheet, cell, title); err != nil {
				return struct{}{}, err
			}
		}

		for row, entry := range leaderboard.Entries {
			values := []any{
				entry.Rank,
				entry.UserName,
				entry.Department,
				entry.TotalPoints,
				entry.TotalPredictions,
				entry.ExactScores,
				entry.CorrectWinners,
			}
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row+2)
				if err != nil {
					return struct{}{}, err
				}
				if err := f.SetCellValue(exportSheet, cell, value); err != nil {
					return struct{}{}, err
				}
			}
		}

		if err := f.Write(w); err != nil {
			return struct{}{}, fmt.Errorf("failed to write spreadsheet: %w", err)
		}
		return struct{}{}, nil
	})
	return err
}
