package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"playroom/internal/shared"
)

// newApp builds the command tree. The root --config flag selects the
// configuration file; the service client is built from it before any
// subcommand runs.
func newApp(runner *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playroom",
		Usage:   "Browse and share playlists from the terminal",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, runner.Configure(cmd.String("config"))
		},
		Commands: runner.register(),
	}
}

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
