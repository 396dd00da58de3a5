package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"auxroom/internal/formatter"
	"auxroom/internal/models"
	"auxroom/internal/shared"
)

// TrackSearch searches the catalog through a room and prints the results.
func (r *Runner) TrackSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	roomID := cmd.String("room")
	useJSON := cmd.Bool("json")

	if query == "" {
		return fmt.Errorf("%w: search query required", shared.ErrMissingArgument)
	}

	r.logger.Info("searching tracks", "room", roomID, "query", query)

	result, err := r.queue.Search(ctx, roomID, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(result.Tracks) == 0 {
		return r.writePlain("No tracks found for %q\n", query)
	}

	if useJSON {
		data, err := formatter.TracksToJSON(result.Tracks)
		if err != nil {
			return err
		}
		r.output.Write(data)
		r.output.Write([]byte("\n"))
		return nil
	}

	return r.writePlain("%s", formatter.TrackList(result.Tracks))
}

// TrackTop lists the host's top tracks for a room.
func (r *Runner) TrackTop(ctx context.Context, cmd *cli.Command) error {
	roomID := cmd.String("room")
	useJSON := cmd.Bool("json")

	r.logger.Info("fetching top tracks", "room", roomID)

	tracks, err := r.queue.TopTracks(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to fetch top tracks: %w", err)
	}

	if useJSON {
		data, err := formatter.TracksToJSON(tracks)
		if err != nil {
			return err
		}
		r.output.Write(data)
		r.output.Write([]byte("\n"))
		return nil
	}

	return r.writePlain("%s", formatter.TrackList(tracks))
}

// TrackQueue submits a track URI to the host's playback queue and prints the
// outcome. A room without an active Spotify player is reported, not failed.
func (r *Runner) TrackQueue(ctx context.Context, cmd *cli.Command) error {
	roomID := cmd.String("room")
	track := models.Track{
		URI:    cmd.String("uri"),
		Name:   cmd.String("name"),
		Artist: cmd.String("artist"),
	}

	r.logger.Info("queueing track", "room", roomID, "uri", track.URI)

	sub, err := r.queue.AddToQueue(ctx, roomID, track)
	if err != nil {
		return fmt.Errorf("failed to queue track: %w", err)
	}

	_, submissions := r.openHistory()
	if submissions != nil {
		if err := submissions.Create(models.NewSubmission(0, roomID, sub)); err != nil {
			r.logger.Debug("failed to record submission", "error", err)
		}
	}

	return r.writePlainln("%s", formatter.Receipt(sub))
}
