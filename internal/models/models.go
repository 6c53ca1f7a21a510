package models

import (
	"fmt"

	"playroom/internal/shared"
)

// DecodeError reports a server record that is missing a required field.
type DecodeError struct {
	Kind  string // record kind: "playlist", "song", "user"
	Field string // missing field name as it appears on the wire
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s record: missing %s", e.Kind, e.Field)
}

func (e *DecodeError) Unwrap() error {
	return shared.ErrDecode
}

// Playlist represents a named, server-owned collection of songs shared among users.
type Playlist struct {
	PlaylistID string `json:"playlistId"`
	Name       string `json:"name"`
}

// Validate checks that the server-assigned identifier and name are present.
func (p Playlist) Validate() error {
	if p.PlaylistID == "" {
		return &DecodeError{Kind: "playlist", Field: "playlistId"}
	}
	if p.Name == "" {
		return &DecodeError{Kind: "playlist", Field: "name"}
	}
	return nil
}

// Label returns the display text for the playlist.
func (p Playlist) Label() string {
	return p.Name
}

// ItemID returns the derived item identifier, e.g. "playlist-1".
func (p Playlist) ItemID() string {
	return "playlist-" + p.PlaylistID
}

// Song represents a song scoped to exactly one playlist. Artist and album are
// optional on the wire; the empty string means absent.
type Song struct {
	SongID string `json:"songId"`
	Title  string `json:"title"`
	Artist string `json:"artist,omitempty"`
	Album  string `json:"album,omitempty"`
}

// Validate checks that the server-assigned identifier and title are present.
func (s Song) Validate() error {
	if s.SongID == "" {
		return &DecodeError{Kind: "song", Field: "songId"}
	}
	if s.Title == "" {
		return &DecodeError{Kind: "song", Field: "title"}
	}
	return nil
}

// Label returns the display text for the song: the title, suffixed with
// " - artist" when the artist is present, then " - album" when the album is.
func (s Song) Label() string {
	label := s.Title
	if s.Artist != "" {
		label += " - " + s.Artist
	}
	if s.Album != "" {
		label += " - " + s.Album
	}
	return label
}

// ItemID returns the derived item identifier, e.g. "song-9".
func (s Song) ItemID() string {
	return "song-" + s.SongID
}

// PlaylistUser represents a user with access to a playlist.
type PlaylistUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	IsYou  bool   `json:"isYou"`
}

// Validate checks that the server-assigned identifier and email are present.
func (u PlaylistUser) Validate() error {
	if u.UserID == "" {
		return &DecodeError{Kind: "user", Field: "userId"}
	}
	if u.Email == "" {
		return &DecodeError{Kind: "user", Field: "email"}
	}
	return nil
}

// Label returns the display text for the user, suffixed with " (You)" for the
// requesting account.
func (u PlaylistUser) Label() string {
	if u.IsYou {
		return u.Email + " (You)"
	}
	return u.Email
}

// ItemID returns the derived item identifier, e.g. "user-3".
func (u PlaylistUser) ItemID() string {
	return "user-" + u.UserID
}
