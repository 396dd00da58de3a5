package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Backend.BaseURL != "http://localhost:8090" {
			t.Errorf("unexpected backend base_url: %s", config.Backend.BaseURL)
		}
		if config.Server.Host != "127.0.0.1" || config.Server.Port != 8080 {
			t.Errorf("unexpected server config: %+v", config.Server)
		}
		if config.Share.Prefix != "auxroom://" {
			t.Errorf("unexpected share prefix: %s", config.Share.Prefix)
		}
		if config.Database.Path != "aux.db" {
			t.Errorf("unexpected database path: %s", config.Database.Path)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("Parses TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[credentials.spotify]
client_id = "client-123"
redirect_uri = "http://localhost:9999/callback"

[backend]
base_url = "http://rooms.example.com"

[share]
prefix = "https://aux.example.com/"
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}

			if config.Credentials.Spotify.ClientID != "client-123" {
				t.Errorf("unexpected client_id: %s", config.Credentials.Spotify.ClientID)
			}
			if config.Backend.BaseURL != "http://rooms.example.com" {
				t.Errorf("unexpected base_url: %s", config.Backend.BaseURL)
			}
			if config.Share.Prefix != "https://aux.example.com/" {
				t.Errorf("unexpected share prefix: %s", config.Share.Prefix)
			}
		})

		t.Run("Missing File", func(t *testing.T) {
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("Invalid TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for invalid TOML")
			}
		})
	})

	t.Run("SaveConfig Round Trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.Credentials.Spotify.ClientID = "client-123"

		if err := SaveConfig(path, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to reload config: %v", err)
		}
		if loaded.Credentials.Spotify.ClientID != "client-123" {
			t.Errorf("unexpected client_id after round trip: %s", loaded.Credentials.Spotify.ClientID)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("config file not created: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when file already exists")
		}
	})

	t.Run("CallbackRedirectURI", func(t *testing.T) {
		config := DefaultConfig()

		if got := config.CallbackRedirectURI(); got != "http://127.0.0.1:8080/callback" {
			t.Errorf("unexpected fallback redirect URI: %s", got)
		}

		config.Credentials.Spotify.RedirectURI = "http://localhost:9999/callback"
		if got := config.CallbackRedirectURI(); got != "http://localhost:9999/callback" {
			t.Errorf("expected explicit redirect URI, got %s", got)
		}
	})
}
