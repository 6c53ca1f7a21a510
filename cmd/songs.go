package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"playroom/internal/formatter"
	"playroom/internal/shared"
)

// SongsList lists the songs of the playlist given by --list.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	listID := cmd.String("list")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	useCSV := cmd.Bool("csv")
	useMD := cmd.Bool("markdown")

	if r.api == nil {
		return fmt.Errorf("%w: service client not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("listing songs", "list", listID)

	songs, err := r.api.ListSongs(ctx, listID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(songs, pretty)
	}

	if useCSV {
		data, err := formatter.SongsToCSV(songs)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	if useMD {
		return r.writePlain("%s", formatter.SongsToMarkdown("", songs))
	}

	return r.writePlain("%s", formatter.SongsToText("", songs))
}

// SongsAdd adds a song to the playlist given by --list. Artist and album are
// optional and sent as given, including the empty string.
func (r *Runner) SongsAdd(ctx context.Context, cmd *cli.Command) error {
	listID := cmd.String("list")
	title := cmd.String("title")
	artist := cmd.String("artist")
	album := cmd.String("album")

	if r.api == nil {
		return fmt.Errorf("%w: service client not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("adding song", "list", listID, "title", title)

	song, err := r.api.CreateSong(ctx, listID, title, artist, album)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Added %s\n", song.Label())
	r.writePlain("  ID: %s\n", song.SongID)

	return nil
}
