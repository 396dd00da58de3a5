package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"auxroom/internal/services"
	"auxroom/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	api := services.NewClient(config.Backend.BaseURL, nil)

	var auth *services.AuthSession
	if config.Credentials.Spotify.ClientID != "" {
		if session, err := services.NewAuthSession(config.Credentials.Spotify.ClientID, config.CallbackRedirectURI(), api); err == nil {
			auth = session
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		API:    api,
		Auth:   auth,
		Rooms:  services.NewRoomSession(api),
		Queue:  services.NewQueueClient(api),
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "aux",
		Usage:    "Host and join shared Spotify listening rooms",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrRoomNotFound) {
			logger.Fatal("room not found")
		}
		logger.Fatalf("application error: %v", err)
	}
}
