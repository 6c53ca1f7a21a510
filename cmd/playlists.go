package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"playroom/internal/formatter"
	"playroom/internal/shared"
)

// PlaylistsList lists the playlists visible to the user.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	useCSV := cmd.Bool("csv")
	useMD := cmd.Bool("markdown")

	if r.api == nil {
		return fmt.Errorf("%w: service client not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("listing playlists")

	playlists, err := r.api.ListPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(playlists, pretty)
	}

	if useCSV {
		data, err := formatter.PlaylistsToCSV(playlists)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	if useMD {
		return r.writePlain("%s", formatter.PlaylistsToMarkdown(playlists))
	}

	return r.writePlain("%s", formatter.PlaylistsToText(playlists))
}

// PlaylistsCreate creates a playlist and prints the server's record.
func (r *Runner) PlaylistsCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	if r.api == nil {
		return fmt.Errorf("%w: service client not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("creating playlist", "name", name)

	playlist, err := r.api.CreatePlaylist(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Created playlist %q\n", playlist.Name)
	r.writePlain("  ID: %s\n", playlist.PlaylistID)

	return nil
}
