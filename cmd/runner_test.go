package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"playroom/internal/api"
	"playroom/internal/models"
	"playroom/internal/shared"
	tu "playroom/internal/testing"
)

func newTestApp(svc api.Service, output *bytes.Buffer) *cli.Command {
	runner := NewRunner(RunnerOpts{
		API:    svc,
		Output: output,
		Logger: shared.NewLogger(&bytes.Buffer{}),
	})
	return &cli.Command{
		Name:     "playroom",
		Commands: runner.register(),
	}
}

func TestNewRunner(t *testing.T) {
	t.Run("with all dependencies provided", func(t *testing.T) {
		config := shared.DefaultConfig()
		logger := shared.NewLogger(nil)
		output := &bytes.Buffer{}
		httpClient := &http.Client{}
		svc := &tu.MockService{}

		runner := NewRunner(RunnerOpts{
			Config:     config,
			ConfigPath: "config.toml",
			API:        svc,
			HTTPClient: httpClient,
			Logger:     logger,
			Output:     output,
		})

		if runner.config != config {
			t.Error("expected config to be set")
		}
		if runner.configPath != "config.toml" {
			t.Error("expected configPath to be set")
		}
		if runner.api != api.Service(svc) {
			t.Error("expected api to be set")
		}
		if runner.httpClient != httpClient {
			t.Error("expected httpClient to be set")
		}
		if runner.logger != logger {
			t.Error("expected logger to be set")
		}
		if runner.output != output {
			t.Error("expected output to be set")
		}
	})

	t.Run("with nil dependencies uses defaults", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		if runner.config == nil {
			t.Error("expected default config to be set")
		}
		if runner.logger == nil {
			t.Error("expected default logger to be set")
		}
		if runner.output != os.Stdout {
			t.Error("expected output to default to os.Stdout")
		}
		if runner.httpClient != http.DefaultClient {
			t.Error("expected httpClient to default to http.DefaultClient")
		}
	})
}

func TestPlaylistsCommands(t *testing.T) {
	t.Run("list renders names", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{Playlists: []models.Playlist{
			{PlaylistID: "1", Name: "Road Trip"},
		}}
		app := newTestApp(svc, &output)

		if err := app.Run(context.Background(), []string{"playroom", "playlists", "list"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Road Trip") {
			t.Errorf("expected output to contain playlist name, got %q", output.String())
		}
	})

	t.Run("list with json flag", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{Playlists: []models.Playlist{
			{PlaylistID: "1", Name: "Road Trip"},
		}}
		app := newTestApp(svc, &output)

		if err := app.Run(context.Background(), []string{"playroom", "playlists", "list", "--json"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), `"playlistId": "1"`) {
			t.Errorf("expected JSON output, got %q", output.String())
		}
	})

	t.Run("list with markdown flag", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{Playlists: []models.Playlist{
			{PlaylistID: "1", Name: "Road Trip"},
		}}
		app := newTestApp(svc, &output)

		if err := app.Run(context.Background(), []string{"playroom", "playlists", "list", "--markdown"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "# Playlists") {
			t.Errorf("expected Markdown heading, got %q", output.String())
		}
		if !strings.Contains(output.String(), "1. Road Trip (`1`)") {
			t.Errorf("expected Markdown entry, got %q", output.String())
		}
	})

	t.Run("create prints server record", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{CreatedPlaylist: &models.Playlist{PlaylistID: "7", Name: "New One"}}
		app := newTestApp(svc, &output)

		if err := app.Run(context.Background(), []string{"playroom", "playlists", "create", "New One"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "ID: 7") {
			t.Errorf("expected server-assigned id in output, got %q", output.String())
		}
		if len(svc.Calls) != 1 || svc.Calls[0] != `CreatePlaylist("New One")` {
			t.Errorf("expected one create call, got %v", svc.Calls)
		}
	})
}

func TestSongsCommands(t *testing.T) {
	t.Run("list is scoped", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{Songs: []models.Song{
			{SongID: "9", Title: "Song A", Artist: "Band"},
		}}
		app := newTestApp(svc, &output)

		if err := app.Run(context.Background(), []string{"playroom", "songs", "list", "--list", "1"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if svc.Calls[0] != "ListSongs(1)" {
			t.Errorf("expected scoped call, got %v", svc.Calls)
		}
		if !strings.Contains(output.String(), "Song A - Band") {
			t.Errorf("expected labeled song in output, got %q", output.String())
		}
	})

	t.Run("list with markdown flag", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{Songs: []models.Song{
			{SongID: "9", Title: "Song A", Artist: "Band"},
		}}
		app := newTestApp(svc, &output)

		if err := app.Run(context.Background(), []string{"playroom", "songs", "list", "--list", "1", "--markdown"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "# Songs") {
			t.Errorf("expected Markdown heading, got %q", output.String())
		}
		if !strings.Contains(output.String(), "1. Song A - Band") {
			t.Errorf("expected labeled Markdown entry, got %q", output.String())
		}
	})

	t.Run("add sends optional fields as given", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{CreatedSong: &models.Song{SongID: "9", Title: "T"}}
		app := newTestApp(svc, &output)

		err := app.Run(context.Background(), []string{
			"playroom", "songs", "add", "--list", "1", "--title", "T", "--artist", "",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if svc.Calls[0] != `CreateSong(1,"T","","")` {
			t.Errorf("expected empty artist and album sent, got %v", svc.Calls)
		}
	})
}

func TestUsersCommands(t *testing.T) {
	t.Run("list marks requesting user", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{Users: []models.PlaylistUser{
			{UserID: "3", Email: "a@example.com", IsYou: true},
		}}
		app := newTestApp(svc, &output)

		if err := app.Run(context.Background(), []string{"playroom", "users", "list", "--list", "1"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "a@example.com (You)") {
			t.Errorf("expected (You) marker, got %q", output.String())
		}
	})

	t.Run("list with markdown flag", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{Users: []models.PlaylistUser{
			{UserID: "3", Email: "a@example.com", IsYou: true},
		}}
		app := newTestApp(svc, &output)

		if err := app.Run(context.Background(), []string{"playroom", "users", "list", "--list", "1", "--markdown"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "# Shared users") {
			t.Errorf("expected Markdown heading, got %q", output.String())
		}
		if !strings.Contains(output.String(), "1. a@example.com (You)") {
			t.Errorf("expected labeled Markdown entry, got %q", output.String())
		}
	})

	t.Run("share surfaces server message", func(t *testing.T) {
		var output bytes.Buffer
		svc := &tu.MockService{ShareErr: &api.Error{Status: 409, Message: "Already shared"}}
		app := newTestApp(svc, &output)

		err := app.Run(context.Background(), []string{
			"playroom", "users", "share", "--list", "1", "--email", "a@example.com",
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "Already shared") {
			t.Errorf("expected server message in error, got %v", err)
		}
	})
}

func TestConfigure(t *testing.T) {
	t.Run("root config flag selects the file", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path != "/api/playlists" {
				http.NotFound(w, req)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"playlistId":"1","name":"Road Trip"}]`))
		}))
		defer srv.Close()

		path := filepath.Join(t.TempDir(), "other.toml")
		conf := "[service]\nbase_url = \"" + srv.URL + "\"\ntimeout_seconds = 5\n"
		if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		var output bytes.Buffer
		runner := NewRunner(RunnerOpts{Output: &output, Logger: shared.NewLogger(&bytes.Buffer{})})
		app := newApp(runner)

		if err := app.Run(context.Background(), []string{"playroom", "--config", path, "playlists", "list"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Road Trip") {
			t.Errorf("expected playlists from the configured service, got %q", output.String())
		}
		if runner.configPath != path {
			t.Errorf("expected configPath %q, got %q", path, runner.configPath)
		}
	})

	t.Run("missing file keeps defaults", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Logger: shared.NewLogger(&bytes.Buffer{})})

		if err := runner.Configure(filepath.Join(t.TempDir(), "absent.toml")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if runner.config.Service.BaseURL != shared.DefaultConfig().Service.BaseURL {
			t.Errorf("expected default base URL, got %q", runner.config.Service.BaseURL)
		}
		if runner.api == nil {
			t.Error("expected service client to be built")
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("service = not toml"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		runner := NewRunner(RunnerOpts{Logger: shared.NewLogger(&bytes.Buffer{})})
		err := runner.Configure(path)
		if !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
