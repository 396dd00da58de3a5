package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"auxroom/internal/models"
	"auxroom/internal/services"
)

// topFetchedMsg carries the host's top tracks, shown before any search.
type topFetchedMsg struct {
	tracks []models.Track
	err    error
}

// searchResultMsg carries one search response. The embedded sequence number
// decides whether the result is still current by the time it arrives.
type searchResultMsg struct {
	result *services.SearchResult
	err    error
}

// enqueuedMsg carries the outcome of a queue submission.
type enqueuedMsg struct {
	submission models.QueueSubmission
	err        error
}

// roomCheckMsg reports whether the room still exists on the backend.
type roomCheckMsg struct {
	exists bool
	err    error
}

// checkTickMsg triggers the next periodic room existence check.
type checkTickMsg struct{}

var (
	_ tea.Msg = topFetchedMsg{}
	_ tea.Msg = searchResultMsg{}
	_ tea.Msg = enqueuedMsg{}
	_ tea.Msg = roomCheckMsg{}
)
