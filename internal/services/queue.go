// Track search and queue submission for a joined room
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"auxroom/internal/models"
	"auxroom/internal/shared"
	"golang.org/x/time/rate"
)

// searchRate caps backend search queries; typing in the search bar can
// otherwise fire a request per keystroke.
const searchRate = 5.0

// QueueClient performs track search and queue submission against a room.
//
// It borrows the room id from the caller rather than owning room state; the
// only state it keeps is the latest search sequence number and the most
// recent submission outcome.
type QueueClient struct {
	api     Backend
	limiter *rate.Limiter
	seq     atomic.Uint64

	mu   sync.Mutex
	last *models.QueueSubmission
}

// NewQueueClient creates a QueueClient backed by the given client.
func NewQueueClient(api Backend) *QueueClient {
	return &QueueClient{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(searchRate), 1),
	}
}

// SearchResult carries tracks together with the request's sequence number.
//
// In-flight searches are not cancelled, so a slow early response can arrive
// after a fast later one. Callers compare Seq against [QueueClient.Latest]
// and discard anything older.
type SearchResult struct {
	Seq    uint64
	Tracks []models.Track
}

// apiTrack mirrors the track objects in backend search and top responses.
type apiTrack struct {
	ID      string `json:"id"`
	URI     string `json:"uri"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
}

// searchResponse is the envelope of the room search endpoint.
type searchResponse struct {
	Tracks struct {
		Items []apiTrack `json:"items"`
	} `json:"tracks"`
}

// topResponse is the envelope of the room top-tracks endpoint.
type topResponse struct {
	Items []apiTrack `json:"items"`
}

// Search queries the room for tracks matching text.
//
// Empty text short-circuits to an empty result synchronously, with no
// network call. Non-200 responses and malformed bodies fail with
// [shared.ErrSearchFailed]; callers keep or clear their previous list as
// they see fit.
func (q *QueueClient) Search(ctx context.Context, roomID, text string) (*SearchResult, error) {
	if roomID == "" {
		return nil, fmt.Errorf("%w: room id", shared.ErrMissingArgument)
	}

	seq := q.seq.Add(1)

	if text == "" {
		return &SearchResult{Seq: seq}, nil
	}

	if err := q.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSearchFailed, err)
	}

	path := fmt.Sprintf("/rooms/%s/search?track=%s", roomID, url.QueryEscape(text))

	resp, err := q.api.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSearchFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", shared.ErrSearchFailed, resp.StatusCode)
	}

	var body searchResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", shared.ErrSearchFailed, err)
	}

	return &SearchResult{Seq: seq, Tracks: toTracks(body.Tracks.Items)}, nil
}

// Latest returns the sequence number of the most recently issued search.
func (q *QueueClient) Latest() uint64 {
	return q.seq.Load()
}

// TopTracks fetches the host's current favorites to seed suggestions.
//
// Fetched once on room entry, not refreshed afterwards.
func (q *QueueClient) TopTracks(ctx context.Context, roomID string) ([]models.Track, error) {
	if roomID == "" {
		return nil, fmt.Errorf("%w: room id", shared.ErrMissingArgument)
	}

	resp, err := q.api.Get(ctx, "/rooms/"+roomID+"/top")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSearchFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", shared.ErrSearchFailed, resp.StatusCode)
	}

	var body topResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", shared.ErrSearchFailed, err)
	}

	return toTracks(body.Items), nil
}

// queueRequest is the body sent when submitting a track to the room queue.
type queueRequest struct {
	SpotifyURI string `json:"spotify_uri"`
}

// AddToQueue submits a track to the room's playback queue.
//
// The outcome is the normal return value: a 404 means the host has no
// reachable playback device, which is an expected user-facing state rather
// than a fault. Any other response counts as enqueued. Missing room id or
// track URI fails loudly with [shared.ErrInvalidInput] instead of silently
// dropping the submission.
func (q *QueueClient) AddToQueue(ctx context.Context, roomID string, track models.Track) (models.QueueSubmission, error) {
	if roomID == "" || track.URI == "" {
		return models.QueueSubmission{}, fmt.Errorf("%w: queue submission requires a room and a track uri", shared.ErrInvalidInput)
	}

	body, err := json.Marshal(queueRequest{SpotifyURI: track.URI})
	if err != nil {
		return models.QueueSubmission{}, fmt.Errorf("failed to marshal queue request: %w", err)
	}

	resp, err := q.api.Post(ctx, "/rooms/"+roomID+"/queue", body)
	if err != nil {
		return models.QueueSubmission{}, fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}

	sub := models.QueueSubmission{Track: track, Outcome: models.OutcomeEnqueued}
	if resp.StatusCode == http.StatusNotFound {
		sub.Outcome = models.OutcomeNoActivePlayer
	}

	q.mu.Lock()
	q.last = &sub
	q.mu.Unlock()

	return sub, nil
}

// LastSubmission returns the most recent submission outcome, if any.
func (q *QueueClient) LastSubmission() (models.QueueSubmission, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.last == nil {
		return models.QueueSubmission{}, false
	}
	return *q.last, true
}

// toTracks maps backend track objects onto the domain model.
func toTracks(items []apiTrack) []models.Track {
	tracks := make([]models.Track, 0, len(items))
	for _, item := range items {
		track := models.Track{
			ID:   item.ID,
			URI:  item.URI,
			Name: item.Name,
		}
		if len(item.Artists) > 0 {
			track.Artist = item.Artists[0].Name
		}
		if len(item.Album.Images) > 0 {
			track.AlbumArtURL = item.Album.Images[0].URL
		}
		tracks = append(tracks, track)
	}
	return tracks
}
