// package formatter renders playlist service records for the CLI (plain text, CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"playroom/internal/models"
)

// PlaylistsToText renders playlists as a numbered plain-text listing.
func PlaylistsToText(playlists []models.Playlist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlists: %d\n\n", len(playlists)))
	for i, p := range playlists {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, p.Name))
		buf.WriteString(fmt.Sprintf("   ID: %s\n", p.PlaylistID))
	}

	return buf.Bytes()
}

// PlaylistsToCSV renders playlists as CSV with columns: ID, Name
func PlaylistsToCSV(playlists []models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Name"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, p := range playlists {
		if err := writer.Write([]string{p.PlaylistID, p.Name}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// PlaylistsToMarkdown renders playlists as a Markdown document.
func PlaylistsToMarkdown(playlists []models.Playlist) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Playlists\n\n")
	buf.WriteString(fmt.Sprintf("**Count**: %d\n\n", len(playlists)))
	for i, p := range playlists {
		buf.WriteString(fmt.Sprintf("%d. %s (`%s`)\n", i+1, p.Name, p.PlaylistID))
	}

	return buf.Bytes()
}

// SongsToText renders a playlist's songs as a numbered plain-text listing
// using the same labels the TUI shows.
func SongsToText(playlistName string, songs []models.Song) []byte {
	var buf bytes.Buffer

	if playlistName != "" {
		buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlistName))
	}
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(songs)))
	for i, s := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, s.Label()))
	}

	return buf.Bytes()
}

// SongsToCSV renders songs as CSV with columns: ID, Title, Artist, Album
func SongsToCSV(songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Title", "Artist", "Album"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, s := range songs {
		if err := writer.Write([]string{s.SongID, s.Title, s.Artist, s.Album}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SongsToMarkdown renders a playlist's songs as a Markdown document.
func SongsToMarkdown(playlistName string, songs []models.Song) []byte {
	var buf bytes.Buffer

	if playlistName == "" {
		playlistName = "Songs"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", playlistName))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(songs)))
	for i, s := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, s.Label()))
	}

	return buf.Bytes()
}

// UsersToText renders a playlist's members as a plain-text listing.
func UsersToText(playlistName string, users []models.PlaylistUser) []byte {
	var buf bytes.Buffer

	if playlistName != "" {
		buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlistName))
	}
	buf.WriteString(fmt.Sprintf("Shared with: %d\n\n", len(users)))
	for i, u := range users {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, u.Label()))
	}

	return buf.Bytes()
}

// UsersToMarkdown renders a playlist's members as a Markdown document.
func UsersToMarkdown(playlistName string, users []models.PlaylistUser) []byte {
	var buf bytes.Buffer

	if playlistName == "" {
		playlistName = "Shared users"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", playlistName))
	buf.WriteString(fmt.Sprintf("**Shared with**: %d\n\n", len(users)))
	for i, u := range users {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, u.Label()))
	}

	return buf.Bytes()
}

// UsersToCSV renders members as CSV with columns: ID, Email, IsYou
func UsersToCSV(users []models.PlaylistUser) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Email", "IsYou"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, u := range users {
		isYou := "false"
		if u.IsYou {
			isYou = "true"
		}
		if err := writer.Write([]string{u.UserID, u.Email, isYou}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
