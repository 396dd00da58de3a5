package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"auxroom/internal/formatter"
)

// HistoryRooms lists rooms hosted or joined from this machine, newest first.
func (r *Runner) HistoryRooms(ctx context.Context, cmd *cli.Command) error {
	visits, _ := r.openHistory()
	if visits == nil {
		return fmt.Errorf("history database unavailable, run 'aux setup database' first")
	}

	criteria := map[string]any{}
	if role := cmd.String("role"); role != "" {
		criteria["role"] = strings.ToUpper(role)
	}

	records, err := visits.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list room history: %w", err)
	}

	if len(records) == 0 {
		return r.writePlain("No rooms recorded yet.\n")
	}

	return r.writePlain("%s", formatter.VisitsToText(records))
}

// HistoryTracks lists tracks submitted from this machine, newest first.
func (r *Runner) HistoryTracks(ctx context.Context, cmd *cli.Command) error {
	_, submissions := r.openHistory()
	if submissions == nil {
		return fmt.Errorf("history database unavailable, run 'aux setup database' first")
	}

	criteria := map[string]any{}
	if roomID := cmd.String("room"); roomID != "" {
		criteria["room_id"] = roomID
	}

	records, err := submissions.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list submission history: %w", err)
	}

	if len(records) == 0 {
		return r.writePlain("No submissions recorded yet.\n")
	}

	if cmd.Bool("csv") {
		data, err := formatter.SubmissionsToCSV(records)
		if err != nil {
			return err
		}
		_, err = r.output.Write(data)
		return err
	}

	return r.writePlain("%s", formatter.SubmissionsToText(records))
}
