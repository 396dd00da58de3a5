package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"auxroom/internal/models"
	"auxroom/internal/shared"
)

// fakeBackend emulates the rooms backend: login, room registry, search, top
// tracks, and queue submission with a toggleable active player.
type fakeBackend struct {
	mu           sync.Mutex
	rooms        map[string]string // room id -> owner
	activePlayer bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{rooms: map[string]string{}, activePlayer: true}
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.URL.Path == "/api/login":
			json.NewEncoder(w).Encode(map[string]string{
				"userId":       "host-1",
				"display_name": "dana",
				"access_token": "tok",
			})

		case strings.HasSuffix(r.URL.Path, "/top"):
			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"id": "t9", "uri": "spotify:track:t9", "name": "Top Pick", "artists": []map[string]string{{"name": "Artist"}}},
				},
			})

		case strings.HasSuffix(r.URL.Path, "/search"):
			w.Write([]byte(searchPayload))

		case strings.HasSuffix(r.URL.Path, "/queue"):
			if !f.activePlayer {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)

		case strings.HasPrefix(r.URL.Path, "/rooms/"):
			id := strings.TrimPrefix(r.URL.Path, "/rooms/")
			switch r.Method {
			case http.MethodPost:
				var body map[string]string
				json.NewDecoder(r.Body).Decode(&body)
				if body["user_id"] == "" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				f.rooms[id] = "dana"
				w.WriteHeader(http.StatusOK)
			case http.MethodGet:
				owner, ok := f.rooms[id]
				if !ok {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				json.NewEncoder(w).Encode(map[string]string{"owner": owner})
			case http.MethodDelete:
				delete(f.rooms, id)
				w.WriteHeader(http.StatusOK)
			}

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// TestRoomLifecycle walks the full host and guest flow against a fake backend:
// login, create, share, join, browse, queue, close, and rejoin after close.
func TestRoomLifecycle(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	server := httptest.NewServer(backend.handler(t))
	defer server.Close()

	api := NewClient(server.URL, nil)

	// Host logs in and opens a room.
	auth, err := NewAuthSession("client-123", "http://127.0.0.1:8080/callback", api)
	if err != nil {
		t.Fatalf("failed to create auth session: %v", err)
	}
	auth.BeginLogin("state-1")

	identity, err := auth.CompleteLogin(ctx, "code-1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	host := NewRoomSession(api)
	room, err := host.Create(ctx, identity)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if room.Role != models.RoleHost {
		t.Fatalf("expected host role, got %v", room.Role)
	}

	// The share link round-trips to the guest.
	link := BuildShareURL("auxroom://", room.ID, room.OwnerName)
	joinID, owner, err := ParseShareURL(link)
	if err != nil {
		t.Fatalf("failed to parse share link: %v", err)
	}
	if owner != "dana" {
		t.Errorf("expected owner 'dana' in link, got %s", owner)
	}

	guest := NewRoomSession(api)
	guestRoom, err := guest.Join(ctx, joinID)
	if err != nil {
		t.Fatalf("guest join failed: %v", err)
	}
	if guestRoom.Role != models.RoleGuest || guestRoom.OwnerName != "dana" {
		t.Errorf("unexpected guest room: %+v", guestRoom)
	}

	// Guest browses top tracks and searches.
	queue := NewQueueClient(api)

	top, err := queue.TopTracks(ctx, guestRoom.ID)
	if err != nil || len(top) != 1 {
		t.Fatalf("top tracks failed: (%v, %v)", top, err)
	}

	result, err := queue.Search(ctx, guestRoom.ID, "first")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Tracks) != 2 {
		t.Fatalf("expected 2 search results, got %d", len(result.Tracks))
	}

	// Submission succeeds while the host has an active player.
	sub, err := queue.AddToQueue(ctx, guestRoom.ID, result.Tracks[0])
	if err != nil {
		t.Fatalf("queue failed: %v", err)
	}
	if sub.Outcome != models.OutcomeEnqueued {
		t.Errorf("expected OutcomeEnqueued, got %v", sub.Outcome)
	}

	// Without a player the same submission reports, not fails.
	backend.mu.Lock()
	backend.activePlayer = false
	backend.mu.Unlock()

	sub, err = queue.AddToQueue(ctx, guestRoom.ID, result.Tracks[0])
	if err != nil {
		t.Fatalf("queue failed: %v", err)
	}
	if sub.Outcome != models.OutcomeNoActivePlayer {
		t.Errorf("expected OutcomeNoActivePlayer, got %v", sub.Outcome)
	}

	// Host closes the room; the guest sees it disappear.
	if err := host.Close(ctx); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	exists, err := guest.StillExists(ctx)
	if err != nil {
		t.Fatalf("existence check failed: %v", err)
	}
	if exists {
		t.Error("expected room to be gone after close")
	}
	guest.Leave()

	latecomer := NewRoomSession(api)
	if _, err := latecomer.Join(ctx, joinID); !errors.Is(err, shared.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound after close, got %v", err)
	}
}
