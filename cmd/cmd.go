// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "csv",
			Usage: "Output CSV",
		},
		&cli.BoolFlag{
			Name:    "markdown",
			Aliases: []string{"md"},
			Usage:   "Output Markdown",
		},
	}
}

func listFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "list",
		Aliases:  []string{"l"},
		Usage:    "Playlist ID to scope the operation to",
		Required: true,
	}
}

// playlistsCommand handles playlist operations
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the playlists visible to you",
				Flags:  outputFlags(),
				Action: r.PlaylistsList,
			},
			{
				Name:  "create",
				Usage: "Create a new playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.PlaylistsCreate,
			},
		},
	}
}

// songsCommand handles song operations scoped to one playlist
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "Song operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the songs of a playlist",
				Flags:  append(outputFlags(), listFlag()),
				Action: r.SongsList,
			},
			{
				Name:  "add",
				Usage: "Add a song to a playlist",
				Flags: []cli.Flag{
					listFlag(),
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Song title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Song artist",
					},
					&cli.StringFlag{
						Name:  "album",
						Usage: "Song album",
					},
				},
				Action: r.SongsAdd,
			},
		},
	}
}

// usersCommand handles playlist sharing operations
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Playlist sharing operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the users a playlist is shared with",
				Flags:  append(outputFlags(), listFlag()),
				Action: r.UsersList,
			},
			{
				Name:  "share",
				Usage: "Share a playlist with a user",
				Flags: []cli.Flag{
					listFlag(),
					&cli.StringFlag{
						Name:     "email",
						Usage:    "E-mail address of the user to share with",
						Required: true,
					},
				},
				Action: r.UsersShare,
			},
		},
	}
}

// setupCommand handles configuration bootstrapping
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a starter config.toml",
				Action: r.SetupConfig,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive playlist browser",
		Action:  r.TUI,
	}
}
