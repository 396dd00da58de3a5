package ui

import (
	"github.com/charmbracelet/bubbles/list"

	"auxroom/internal/formatter"
	"auxroom/internal/models"
)

var _ list.Item = trackItem{}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track models.Track
}

func (i trackItem) FilterValue() string { return i.track.Name }
func (i trackItem) Title() string       { return formatter.TruncateName(i.track.Name) }
func (i trackItem) Description() string { return formatter.TruncateName(i.track.Artist) }

func toItems(tracks []models.Track) []list.Item {
	items := make([]list.Item, len(tracks))
	for i, track := range tracks {
		items[i] = trackItem{track: track}
	}
	return items
}
