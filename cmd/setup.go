package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"playroom/internal/shared"
)

// SetupConfig writes a starter config.toml from the embedded example.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	r.writePlain("✓ Config written to %s\n", configPath)
	r.writePlain("Set service.base_url and service.token, then run: playroom tui\n")

	return nil
}
