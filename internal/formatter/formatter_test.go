package formatter

import (
	"strings"
	"testing"

	"auxroom/internal/models"
)

func TestTruncateName(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short name unchanged",
			input: "Short Song",
			want:  "Short Song",
		},
		{
			name:  "exactly at limit",
			input: strings.Repeat("a", 25),
			want:  strings.Repeat("a", 25),
		},
		{
			name:  "long name truncated",
			input: "An Extremely Long Track Title That Keeps Going",
			want:  "An Extremely Long Track T...",
		},
		{
			name:  "multibyte runes counted as characters",
			input: strings.Repeat("é", 30),
			want:  strings.Repeat("é", 25) + "...",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateName(tt.input)
			if got != tt.want {
				t.Errorf("TruncateName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReceipt(t *testing.T) {
	track := models.Track{URI: "spotify:track:t1", Name: "First Song", Artist: "Artist One"}

	t.Run("Enqueued", func(t *testing.T) {
		got := Receipt(models.QueueSubmission{Track: track, Outcome: models.OutcomeEnqueued})
		if !strings.Contains(got, "Added") || !strings.Contains(got, "First Song") {
			t.Errorf("unexpected receipt: %q", got)
		}
	})

	t.Run("No Active Player", func(t *testing.T) {
		got := Receipt(models.QueueSubmission{Track: track, Outcome: models.OutcomeNoActivePlayer})
		if !strings.Contains(got, "No active player") {
			t.Errorf("unexpected receipt: %q", got)
		}
	})
}

func TestTrackList(t *testing.T) {
	tracks := []models.Track{
		{Name: "First Song", Artist: "Artist One"},
		{Name: "Second Song", Artist: "Artist Two"},
	}

	got := TrackList(tracks)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "1. First Song - Artist One") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2. Second Song - Artist Two") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestRoomSummary(t *testing.T) {
	t.Run("Host", func(t *testing.T) {
		got := RoomSummary(models.Room{ID: "room-1", OwnerName: "dana", Role: models.RoleHost})
		if !strings.Contains(got, "Hosting") || !strings.Contains(got, "room-1") {
			t.Errorf("unexpected summary: %q", got)
		}
	})

	t.Run("Guest", func(t *testing.T) {
		got := RoomSummary(models.Room{ID: "room-1", OwnerName: "dana", Role: models.RoleGuest})
		if !strings.Contains(got, "dana") || !strings.Contains(got, "room-1") {
			t.Errorf("unexpected summary: %q", got)
		}
	})
}

func TestSubmissionsToCSV(t *testing.T) {
	sub := models.QueueSubmission{
		Track:   models.Track{URI: "spotify:track:t1", Name: "First Song", Artist: "Artist One"},
		Outcome: models.OutcomeEnqueued,
	}
	records := []*models.Submission{models.NewSubmission(1, "room-1", sub)}

	data, err := SubmissionsToCSV(records)
	if err != nil {
		t.Fatalf("failed to generate CSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one record, got %d lines", len(lines))
	}
	if lines[0] != "Room,Track,Artist,URI,Outcome,SubmittedAt" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "room-1") || !strings.Contains(lines[1], "spotify:track:t1") {
		t.Errorf("unexpected record: %q", lines[1])
	}
}
