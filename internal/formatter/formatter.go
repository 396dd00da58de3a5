// package formatter provides display helpers for tracks, queue receipts, and
// history exports (plain text, CSV)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"auxroom/internal/models"
	"auxroom/internal/shared"
)

// maxNameLength is the longest track or artist name shown before truncation.
const maxNameLength = 25

// TruncateName shortens a display name to 25 characters, appending "..." when
// cut. The underlying value is never modified; only the rendered form shrinks.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameLength {
		return name
	}
	return string(runes[:maxNameLength]) + "..."
}

// TrackLine renders a single track as "Name - Artist" with both parts truncated
func TrackLine(track models.Track) string {
	return fmt.Sprintf("%s - %s", TruncateName(track.Name), TruncateName(track.Artist))
}

// TrackList renders a numbered plain text listing of tracks
func TrackList(tracks []models.Track) string {
	var buf bytes.Buffer
	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, TrackLine(track)))
	}
	return buf.String()
}

// Receipt renders the outcome of a queue submission as a user-facing message
func Receipt(sub models.QueueSubmission) string {
	switch sub.Outcome {
	case models.OutcomeEnqueued:
		return fmt.Sprintf("Added %s!", TrackLine(sub.Track))
	case models.OutcomeNoActivePlayer:
		return "No active player found! Make sure you have an open spotify session on one of your devices."
	default:
		return fmt.Sprintf("Unknown outcome for %s", TrackLine(sub.Track))
	}
}

// RoomSummary renders a one-line description of a room from this client's view
func RoomSummary(room models.Room) string {
	if room.Role == models.RoleHost {
		return fmt.Sprintf("Hosting room %s", room.ID)
	}
	return fmt.Sprintf("In %s's room (%s)", TruncateName(room.OwnerName), room.ID)
}

// VisitsToText renders room visit history as plain text, newest first
func VisitsToText(visits []*models.RoomVisit) string {
	var buf bytes.Buffer
	for _, v := range visits {
		buf.WriteString(fmt.Sprintf("%s  %-5s  %s  (%s)\n",
			v.CreatedAt().Format("2006-01-02 15:04"), v.Role(), v.RoomID(), TruncateName(v.OwnerName())))
	}
	return buf.String()
}

// SubmissionsToText renders submission history as plain text, newest first
func SubmissionsToText(subs []*models.Submission) string {
	var buf bytes.Buffer
	for _, s := range subs {
		buf.WriteString(fmt.Sprintf("%s  %s - %s  [%s]\n",
			s.CreatedAt().Format("2006-01-02 15:04"), TruncateName(s.TrackName()), TruncateName(s.Artist()), s.Outcome()))
	}
	return buf.String()
}

// SubmissionsToCSV converts submission history to CSV with columns: Room, Track, Artist, URI, Outcome, SubmittedAt
func SubmissionsToCSV(subs []*models.Submission) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Room", "Track", "Artist", "URI", "Outcome", "SubmittedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, s := range subs {
		record := []string{
			s.RoomID(),
			s.TrackName(),
			s.Artist(),
			s.TrackURI(),
			string(s.Outcome()),
			s.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// TracksToJSON generates a pretty JSON representation of a track listing
func TracksToJSON(tracks []models.Track) ([]byte, error) {
	return shared.MarshalJSON(tracks, true)
}
