// OAuth authorization-code flow against the rooms backend login endpoint
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"auxroom/internal/models"
	"auxroom/internal/shared"
	"golang.org/x/oauth2"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"

	loginPath = "/api/login"
)

// spotifyScopes is the fixed scope set the room host must grant.
var spotifyScopes = []string{
	"user-read-private",
	"user-read-email",
	"user-modify-playback-state",
	"user-top-read",
}

// AuthState tracks progress through the login flow.
type AuthState int

const (
	Unauthenticated AuthState = iota
	Pending
	Authenticated
)

// AuthSession drives the authorization-code flow and owns the authenticated identity.
//
// The flow is split between two collaborators: a browser redirect handler
// delivers the authorization code, and the backend performs the secret
// exchange. The access token obtained from the exchange stays inside this
// type; only the identity and a boolean authenticated state cross the boundary.
type AuthSession struct {
	config *oauth2.Config
	api    Backend

	mu       sync.Mutex
	state    AuthState
	identity models.Identity
	token    string
}

// NewAuthSession creates an AuthSession for the given Spotify application.
func NewAuthSession(clientID, redirectURI string, api Backend) (*AuthSession, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: spotify client_id", shared.ErrMissingCredentials)
	}

	config := &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURI,
		Scopes:      spotifyScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}

	return &AuthSession{config: config, api: api}, nil
}

// BeginLogin constructs the authorization-code URL for the browser collaborator.
//
// No PKCE challenge is attached: the backend holds the client secret and
// performs the exchange. Marks the session as pending.
func (s *AuthSession) BeginLogin(state string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Unauthenticated {
		s.state = Pending
	}

	return s.config.AuthCodeURL(state)
}

// loginRequest is the body sent to the backend login endpoint.
type loginRequest struct {
	ClientID    string `json:"client_id"`
	GrantType   string `json:"grant_type"`
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

// loginResponse is the identity payload returned by a successful exchange.
type loginResponse struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"display_name"`
	AccessToken string `json:"access_token"`
}

// CompleteLogin exchanges the authorization code for an identity via the backend.
//
// Idempotent once authenticated: a second call returns the existing identity
// without a network call. On any failure the identity is left unset (never
// partially populated) and the session returns to Unauthenticated.
func (s *AuthSession) CompleteLogin(ctx context.Context, code string) (models.Identity, error) {
	s.mu.Lock()
	if s.state == Authenticated {
		identity := s.identity
		s.mu.Unlock()
		return identity, nil
	}
	s.mu.Unlock()

	if code == "" {
		return models.Identity{}, fmt.Errorf("%w: empty authorization code", shared.ErrInvalidInput)
	}

	body, err := json.Marshal(loginRequest{
		ClientID:    s.config.ClientID,
		GrantType:   "authorization_code",
		Code:        code,
		RedirectURI: s.config.RedirectURL,
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to marshal login request: %w", err)
	}

	resp, err := s.api.Post(ctx, loginPath, body)
	if err != nil {
		s.reset()
		return models.Identity{}, fmt.Errorf("%w: %v", shared.ErrExchangeFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.reset()
		return models.Identity{}, fmt.Errorf("%w: status %d", shared.ErrExchangeFailed, resp.StatusCode)
	}

	var login loginResponse
	if err := json.Unmarshal(resp.Body, &login); err != nil {
		s.reset()
		return models.Identity{}, fmt.Errorf("%w: malformed response: %v", shared.ErrExchangeFailed, err)
	}

	if login.UserID == "" || login.DisplayName == "" || login.AccessToken == "" {
		s.reset()
		return models.Identity{}, fmt.Errorf("%w: incomplete identity in response", shared.ErrExchangeFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = models.Identity{UserID: login.UserID, Username: login.DisplayName}
	s.token = login.AccessToken
	s.state = Authenticated

	return s.identity, nil
}

// reset returns the session to Unauthenticated with identity unset.
func (s *AuthSession) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = models.Identity{}
	s.token = ""
	s.state = Unauthenticated
}

// State returns the current position in the login flow.
func (s *AuthSession) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Authenticated reports whether a login has completed.
func (s *AuthSession) Authenticated() bool {
	return s.State() == Authenticated
}

// Identity returns the authenticated identity, or false before login completes.
func (s *AuthSession) Identity() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Authenticated {
		return models.Identity{}, false
	}
	return s.identity, true
}
