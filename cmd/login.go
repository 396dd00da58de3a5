package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"auxroom/internal/models"
	"auxroom/internal/server"
	"auxroom/internal/services"
	"auxroom/internal/shared"
)

// Login runs the full authorization flow and prints the resulting identity.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	identity, err := r.doLogin(ctx, cmd.String("config"))
	if err != nil {
		return err
	}

	r.writePlainln("✓ Logged in as %s", identity.Username)
	return nil
}

// doLogin performs the authorization-code flow: it starts a local callback
// server, opens the browser, waits for the redirect, and hands the code to the
// backend for exchange. If the session is already authenticated it returns the
// existing identity without another browser round trip.
func (r *Runner) doLogin(ctx context.Context, configPath string) (models.Identity, error) {
	if r.auth == nil {
		auth, err := r.buildAuthSession(configPath)
		if err != nil {
			return models.Identity{}, err
		}
		r.auth = auth
	}

	if identity, ok := r.auth.Identity(); ok {
		return identity, nil
	}

	state, err := shared.GenerateState()
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := r.auth.BeginLogin(state)
	callback := server.NewCallbackHandler(state)
	router := server.NewBasicRouter()
	router.Handler(callback)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Spotify authorization...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.CallbackResult

	select {
	case result = <-callback.Result():
		// Got result from callback
	case err := <-serverErrors:
		return models.Identity{}, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return models.Identity{}, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return models.Identity{}, fmt.Errorf("authorization failed: %w", result.Error())
	}

	identity, err := r.auth.CompleteLogin(ctx, result.Code)
	if err != nil {
		return models.Identity{}, err
	}

	r.logger.Info("login complete", "user", identity.Username)
	return identity, nil
}

// buildAuthSession constructs an auth session from disk config when the
// runner was started without Spotify credentials.
func (r *Runner) buildAuthSession(configPath string) (*services.AuthSession, error) {
	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			config = loaded
			r.config = loaded
		}
	}

	if config.Credentials.Spotify.ClientID == "" {
		return nil, fmt.Errorf("%w: Spotify client_id must be set in config.toml", shared.ErrMissingCredentials)
	}

	return services.NewAuthSession(config.Credentials.Spotify.ClientID, config.CallbackRedirectURI(), r.api)
}
