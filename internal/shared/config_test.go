package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Service.BaseURL == "" {
			t.Error("expected default base URL to be set")
		}
		if config.Service.TimeoutSeconds <= 0 {
			t.Error("expected positive default timeout")
		}
		if config.Service.RequestsPerSec <= 0 {
			t.Error("expected positive default rate limit")
		}
		if config.Log.Level == "" {
			t.Error("expected default log level to be set")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("Valid File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[service]
base_url = "https://rooms.example.com"
token = "tok-123"
timeout_seconds = 10

[log]
level = "debug"
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.Service.BaseURL != "https://rooms.example.com" {
				t.Errorf("expected base URL 'https://rooms.example.com', got %s", config.Service.BaseURL)
			}
			if config.Service.Token != "tok-123" {
				t.Errorf("expected token 'tok-123', got %s", config.Service.Token)
			}
			if config.Log.Level != "debug" {
				t.Errorf("expected log level 'debug', got %s", config.Log.Level)
			}
		})

		t.Run("Missing File", func(t *testing.T) {
			_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
			if err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("Invalid TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadConfig(path)
			if err == nil {
				t.Error("expected error for invalid TOML")
			}
		})
	})

	t.Run("SaveConfig Round Trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		config := DefaultConfig()
		config.Service.Token = "saved-token"

		if err := SaveConfig(path, config); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if loaded.Service.Token != "saved-token" {
			t.Errorf("expected token 'saved-token', got %s", loaded.Service.Token)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("New File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")

			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected config file to exist: %v", err)
			}
		})

		t.Run("Existing File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("# existing"), 0644); err != nil {
				t.Fatal(err)
			}

			if err := CreateConfigFile(path); err == nil {
				t.Error("expected error when config file already exists")
			}
		})
	})
}
