package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"auxroom/internal/formatter"
	"auxroom/internal/models"
	"auxroom/internal/services"
	"auxroom/internal/shared"
	"auxroom/internal/ui"
)

// RoomHost logs in, creates a room, prints its share link, and opens the
// interactive queue. The room is closed when the TUI exits.
func (r *Runner) RoomHost(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.doLogin(ctx, cmd.String("config"))
	if err != nil {
		return err
	}

	room, err := r.rooms.Create(ctx, identity)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	r.logger.Info("room created", "room", room.ID)
	r.recordVisit(room)

	link := services.BuildShareURL(r.config.Share.Prefix, room.ID, room.OwnerName)
	r.writePlainln("✓ Room created: %s", room.ID)
	r.writePlain("Share this link with your guests:\n%s\n", link)

	if cmd.Bool("no-ui") {
		r.writePlain("\nClose the room with: aux room close %s\n", room.ID)
		return nil
	}

	if err := r.runRoomUI(ctx, room); err != nil {
		return err
	}

	if err := r.rooms.Close(ctx); err != nil {
		return fmt.Errorf("failed to close room: %w", err)
	}
	r.writePlainln("✓ Room closed")
	return nil
}

// RoomJoin joins an existing room by ID or share link and opens the
// interactive queue. Guests leave without closing the room.
func (r *Runner) RoomJoin(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("room")
	if arg == "" {
		return fmt.Errorf("%w: room ID or share link required", shared.ErrMissingArgument)
	}

	roomID := arg
	if strings.Contains(arg, "rooms/") {
		id, _, err := services.ParseShareURL(arg)
		if err != nil {
			return fmt.Errorf("failed to parse share link: %w", err)
		}
		roomID = id
	}

	room, err := r.rooms.Join(ctx, roomID)
	if err != nil {
		if errors.Is(err, shared.ErrRoomNotFound) {
			return fmt.Errorf("%w: %s", shared.ErrRoomNotFound, roomID)
		}
		return fmt.Errorf("failed to join room: %w", err)
	}

	r.logger.Info("joined room", "room", room.ID, "owner", room.OwnerName)
	r.recordVisit(room)

	r.writePlainln("✓ Joined %s", formatter.RoomSummary(room))

	if cmd.Bool("no-ui") {
		return nil
	}

	if err := r.runRoomUI(ctx, room); err != nil {
		return err
	}

	r.rooms.Leave()
	return nil
}

// RoomStatus reports whether a room still exists on the backend.
func (r *Runner) RoomStatus(ctx context.Context, cmd *cli.Command) error {
	roomID := cmd.StringArg("room")
	if roomID == "" {
		return fmt.Errorf("%w: room ID required", shared.ErrMissingArgument)
	}

	room, err := r.rooms.Join(ctx, roomID)
	if err != nil {
		if errors.Is(err, shared.ErrRoomNotFound) {
			r.writePlain("✗ Room %s does not exist\n", roomID)
			return nil
		}
		return err
	}
	r.rooms.Leave()

	r.writePlain("✓ Room %s is open, hosted by %s\n", room.ID, formatter.TruncateName(room.OwnerName))
	return nil
}

// RoomClose deletes a room. The backend only honors this for the host's
// rooms, so a stale or foreign ID fails with a close error.
func (r *Runner) RoomClose(ctx context.Context, cmd *cli.Command) error {
	roomID := cmd.StringArg("room")
	if roomID == "" {
		return fmt.Errorf("%w: room ID required", shared.ErrMissingArgument)
	}

	resp, err := r.api.Delete(ctx, "/rooms/"+roomID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrCloseFailed, err)
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("%w: status %d", shared.ErrCloseFailed, resp.StatusCode)
	}

	r.writePlainln("✓ Room closed: %s", roomID)
	return nil
}

func (r *Runner) runRoomUI(ctx context.Context, room models.Room) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/aux-tui.log")
	if err == nil {
		r.SetLogger(fileLogger)
	}

	_, submissions := r.openHistory()

	model := ui.NewModel(ctx, room, r.queue, r.rooms, submissions)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

func (r *Runner) recordVisit(room models.Room) {
	visits, _ := r.openHistory()
	if visits == nil {
		return
	}
	if err := visits.Create(models.NewRoomVisit(0, room)); err != nil {
		r.logger.Debug("failed to record room visit", "error", err)
	}
}
