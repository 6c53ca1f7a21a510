// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"playroom/internal/models"
)

// MockService is a configurable test double for the playlist service.
// Every call is recorded in Calls so tests can assert what was sent.
type MockService struct {
	Playlists []models.Playlist
	Songs     []models.Song
	Users     []models.PlaylistUser

	CreatedPlaylist *models.Playlist
	CreatedSong     *models.Song
	SharedUser      *models.PlaylistUser

	PlaylistsErr error
	SongsErr     error
	UsersErr     error
	CreateErr    error
	ShareErr     error

	Calls []string
}

func (m *MockService) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	m.Calls = append(m.Calls, "ListPlaylists()")
	return m.Playlists, m.PlaylistsErr
}

func (m *MockService) CreatePlaylist(ctx context.Context, name string) (*models.Playlist, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("CreatePlaylist(%q)", name))
	return m.CreatedPlaylist, m.CreateErr
}

func (m *MockService) ListSongs(ctx context.Context, listID string) ([]models.Song, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("ListSongs(%s)", listID))
	return m.Songs, m.SongsErr
}

func (m *MockService) CreateSong(ctx context.Context, listID, title, artist, album string) (*models.Song, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("CreateSong(%s,%q,%q,%q)", listID, title, artist, album))
	return m.CreatedSong, m.CreateErr
}

func (m *MockService) ListUsers(ctx context.Context, listID string) ([]models.PlaylistUser, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("ListUsers(%s)", listID))
	return m.Users, m.UsersErr
}

func (m *MockService) ShareUser(ctx context.Context, listID, email string) (*models.PlaylistUser, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("ShareUser(%s,%q)", listID, email))
	return m.SharedUser, m.ShareErr
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
