// Room lifecycle against the rooms backend
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"auxroom/internal/models"
	"auxroom/internal/shared"
)

// RoomSession owns the lifecycle of the single active room for this session.
//
// A session holds at most one room at a time: either hosted via Create or
// adopted via Join. The backend remains authoritative for a room's existence;
// the session only mirrors what the last interaction reported.
type RoomSession struct {
	api Backend

	mu   sync.Mutex
	room *models.Room

	// newID generates client-side room identifiers. Swapped in tests.
	newID func() string
}

// NewRoomSession creates a RoomSession backed by the given client.
func NewRoomSession(api Backend) *RoomSession {
	return &RoomSession{api: api, newID: shared.GenerateID}
}

// createRequest is the body sent when registering a new room.
type createRequest struct {
	UserID string `json:"user_id"`
}

// roomResponse is the body returned by the room existence endpoint.
type roomResponse struct {
	Owner string `json:"owner"`
}

// Create registers a fresh room with the backend and adopts it as host.
//
// Requires an authenticated identity; no network call is made without one.
// The room identifier is a client-generated UUID. A non-2xx response is
// treated as creation failure rather than trusting the POST blindly.
func (s *RoomSession) Create(ctx context.Context, identity models.Identity) (models.Room, error) {
	if identity.UserID == "" {
		return models.Room{}, fmt.Errorf("%w: log in before creating a room", shared.ErrUnauthenticated)
	}

	s.mu.Lock()
	if s.room != nil {
		active := s.room.ID
		s.mu.Unlock()
		return models.Room{}, fmt.Errorf("%w: %s", shared.ErrRoomActive, active)
	}
	s.mu.Unlock()

	id := s.newID()

	body, err := json.Marshal(createRequest{UserID: identity.UserID})
	if err != nil {
		return models.Room{}, fmt.Errorf("failed to marshal create request: %w", err)
	}

	resp, err := s.api.Post(ctx, "/rooms/"+id, body)
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %v", shared.ErrCreateFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Room{}, fmt.Errorf("%w: status %d", shared.ErrCreateFailed, resp.StatusCode)
	}

	room := models.Room{ID: id, OwnerName: identity.Username, Role: models.RoleHost}

	s.mu.Lock()
	s.room = &room
	s.mu.Unlock()

	return room, nil
}

// Join validates that a room exists and adopts it as guest.
//
// A 404 means the room does not exist (or has expired) and leaves the
// session without a room; the caller should surface that specifically
// rather than as a generic failure.
func (s *RoomSession) Join(ctx context.Context, id string) (models.Room, error) {
	if id == "" {
		return models.Room{}, fmt.Errorf("%w: room id", shared.ErrMissingArgument)
	}

	s.mu.Lock()
	if s.room != nil {
		active := s.room.ID
		s.mu.Unlock()
		return models.Room{}, fmt.Errorf("%w: %s", shared.ErrRoomActive, active)
	}
	s.mu.Unlock()

	resp, err := s.api.Get(ctx, "/rooms/"+id)
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %v", shared.ErrUnexpectedStatus, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.Room{}, fmt.Errorf("%w: %s", shared.ErrRoomNotFound, id)
	case resp.StatusCode != http.StatusOK:
		return models.Room{}, fmt.Errorf("%w: status %d", shared.ErrUnexpectedStatus, resp.StatusCode)
	}

	var found roomResponse
	if err := json.Unmarshal(resp.Body, &found); err != nil {
		return models.Room{}, fmt.Errorf("%w: malformed response: %v", shared.ErrUnexpectedStatus, err)
	}

	room := models.Room{ID: id, OwnerName: found.Owner, Role: models.RoleGuest}

	s.mu.Lock()
	s.room = &room
	s.mu.Unlock()

	return room, nil
}

// Close deletes the hosted room from the backend and clears session state.
//
// A no-op success when no room is active. Only the host may close; any
// status other than 200 leaves the room in place and fails with
// [shared.ErrCloseFailed] so the user can retry.
func (s *RoomSession) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.room == nil {
		s.mu.Unlock()
		return nil
	}
	room := *s.room
	s.mu.Unlock()

	if room.Role != models.RoleHost {
		return fmt.Errorf("%w: joined as guest", shared.ErrNotHost)
	}

	resp, err := s.api.Delete(ctx, "/rooms/"+room.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrCloseFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", shared.ErrCloseFailed, resp.StatusCode)
	}

	s.mu.Lock()
	s.room = nil
	s.mu.Unlock()

	return nil
}

// StillExists probes the backend for the active room once.
//
// Guests run this when entering the room view; false means the room expired
// server-side and the caller should Leave and return to the entry screen.
func (s *RoomSession) StillExists(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.room == nil {
		s.mu.Unlock()
		return false, nil
	}
	id := s.room.ID
	s.mu.Unlock()

	resp, err := s.api.Get(ctx, "/rooms/"+id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", shared.ErrUnexpectedStatus, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: status %d", shared.ErrUnexpectedStatus, resp.StatusCode)
	}
}

// Leave discards the session's room reference without touching the backend.
//
// Used by guests exiting a room, or after StillExists reports expiry.
func (s *RoomSession) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.room = nil
}

// Current returns the active room, or false when none is active.
func (s *RoomSession) Current() (models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.room == nil {
		return models.Room{}, false
	}
	return *s.room, true
}

// Active reports whether a room is currently held by this session.
func (s *RoomSession) Active() bool {
	_, ok := s.Current()
	return ok
}
