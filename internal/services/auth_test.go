package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"auxroom/internal/shared"
)

func newTestAuth(t *testing.T, backendURL string) *AuthSession {
	t.Helper()
	auth, err := NewAuthSession("client-123", "http://127.0.0.1:8080/callback", NewClient(backendURL, nil))
	if err != nil {
		t.Fatalf("failed to create auth session: %v", err)
	}
	return auth
}

func TestAuthSession(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("Requires Client ID", func(t *testing.T) {
			if _, err := NewAuthSession("", "http://127.0.0.1:8080/callback", nil); !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})

		t.Run("Starts Unauthenticated", func(t *testing.T) {
			auth := newTestAuth(t, "")
			if auth.State() != Unauthenticated {
				t.Errorf("expected Unauthenticated, got %v", auth.State())
			}
			if _, ok := auth.Identity(); ok {
				t.Error("expected no identity before login")
			}
		})
	})

	t.Run("BeginLogin", func(t *testing.T) {
		auth := newTestAuth(t, "")
		authURL := auth.BeginLogin("state-xyz")

		parsed, err := url.Parse(authURL)
		if err != nil {
			t.Fatalf("invalid auth URL: %v", err)
		}

		query := parsed.Query()
		if query.Get("client_id") != "client-123" {
			t.Errorf("expected client_id in URL, got %s", query.Get("client_id"))
		}
		if query.Get("state") != "state-xyz" {
			t.Errorf("expected state in URL, got %s", query.Get("state"))
		}
		if query.Get("response_type") != "code" {
			t.Errorf("expected response_type=code, got %s", query.Get("response_type"))
		}

		scopes := query.Get("scope")
		for _, want := range []string{"user-read-private", "user-read-email", "user-modify-playback-state", "user-top-read"} {
			if !strings.Contains(scopes, want) {
				t.Errorf("expected scope %s in %q", want, scopes)
			}
		}

		if auth.State() != Pending {
			t.Errorf("expected Pending after BeginLogin, got %v", auth.State())
		}
	})

	t.Run("CompleteLogin", func(t *testing.T) {
		t.Run("Successful Exchange", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/login" {
					t.Errorf("expected path '/api/login', got %s", r.URL.Path)
				}

				var body map[string]string
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode login request: %v", err)
				}
				if body["grant_type"] != "authorization_code" {
					t.Errorf("expected grant_type authorization_code, got %s", body["grant_type"])
				}
				if body["code"] != "code-abc" {
					t.Errorf("expected code 'code-abc', got %s", body["code"])
				}
				if body["client_id"] != "client-123" {
					t.Errorf("expected client_id 'client-123', got %s", body["client_id"])
				}
				if body["redirect_uri"] == "" {
					t.Error("expected redirect_uri to be sent")
				}

				json.NewEncoder(w).Encode(map[string]string{
					"userId":       "u1",
					"display_name": "dana",
					"access_token": "tok",
				})
			}))
			defer server.Close()

			auth := newTestAuth(t, server.URL)
			identity, err := auth.CompleteLogin(context.Background(), "code-abc")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if identity.UserID != "u1" || identity.Username != "dana" {
				t.Errorf("unexpected identity: %+v", identity)
			}
			if !auth.Authenticated() {
				t.Error("expected session to be authenticated")
			}
		})

		t.Run("Empty Code", func(t *testing.T) {
			auth := newTestAuth(t, "")
			if _, err := auth.CompleteLogin(context.Background(), ""); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("Backend Rejects Exchange", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			}))
			defer server.Close()

			auth := newTestAuth(t, server.URL)
			if _, err := auth.CompleteLogin(context.Background(), "code-abc"); !errors.Is(err, shared.ErrExchangeFailed) {
				t.Errorf("expected ErrExchangeFailed, got %v", err)
			}
			if auth.State() != Unauthenticated {
				t.Errorf("expected Unauthenticated after failure, got %v", auth.State())
			}
		})

		t.Run("Incomplete Identity Is All Or Nothing", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{
					"userId":       "u1",
					"display_name": "dana",
				})
			}))
			defer server.Close()

			auth := newTestAuth(t, server.URL)
			if _, err := auth.CompleteLogin(context.Background(), "code-abc"); !errors.Is(err, shared.ErrExchangeFailed) {
				t.Errorf("expected ErrExchangeFailed, got %v", err)
			}
			if _, ok := auth.Identity(); ok {
				t.Error("expected no identity after incomplete response")
			}
			if auth.Authenticated() {
				t.Error("expected session to remain unauthenticated")
			}
		})

		t.Run("Idempotent Once Authenticated", func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				json.NewEncoder(w).Encode(map[string]string{
					"userId":       "u1",
					"display_name": "dana",
					"access_token": "tok",
				})
			}))
			defer server.Close()

			auth := newTestAuth(t, server.URL)
			if _, err := auth.CompleteLogin(context.Background(), "code-abc"); err != nil {
				t.Fatalf("first login failed: %v", err)
			}

			identity, err := auth.CompleteLogin(context.Background(), "code-other")
			if err != nil {
				t.Fatalf("second login failed: %v", err)
			}
			if identity.UserID != "u1" {
				t.Errorf("expected existing identity, got %+v", identity)
			}
			if calls != 1 {
				t.Errorf("expected a single exchange call, got %d", calls)
			}
		})
	})
}
