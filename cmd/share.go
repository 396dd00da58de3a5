package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"auxroom/internal/services"
	"auxroom/internal/shared"
)

// ShareBuild prints the deep link for a room.
func (r *Runner) ShareBuild(ctx context.Context, cmd *cli.Command) error {
	roomID := cmd.StringArg("room")
	owner := cmd.StringArg("owner")

	link := services.BuildShareURL(r.config.Share.Prefix, roomID, owner)
	if link == "" {
		return fmt.Errorf("%w: room ID and owner are both required", shared.ErrMissingArgument)
	}

	return r.writePlain("%s\n", link)
}

// ShareParse extracts the room ID and owner from a share link.
func (r *Runner) ShareParse(ctx context.Context, cmd *cli.Command) error {
	link := cmd.StringArg("link")
	if link == "" {
		return fmt.Errorf("%w: share link required", shared.ErrMissingArgument)
	}

	roomID, owner, err := services.ParseShareURL(link)
	if err != nil {
		return fmt.Errorf("failed to parse share link: %w", err)
	}

	r.writePlain("Room:  %s\n", roomID)
	r.writePlain("Owner: %s\n", owner)
	return nil
}
