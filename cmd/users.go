package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"playroom/internal/api"
	"playroom/internal/formatter"
	"playroom/internal/shared"
)

// UsersList lists the users the playlist given by --list is shared with.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	listID := cmd.String("list")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	useCSV := cmd.Bool("csv")
	useMD := cmd.Bool("markdown")

	if r.api == nil {
		return fmt.Errorf("%w: service client not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("listing playlist users", "list", listID)

	users, err := r.api.ListUsers(ctx, listID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(users, pretty)
	}

	if useCSV {
		data, err := formatter.UsersToCSV(users)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	if useMD {
		return r.writePlain("%s", formatter.UsersToMarkdown("", users))
	}

	return r.writePlain("%s", formatter.UsersToText("", users))
}

// UsersShare grants a user access to the playlist given by --list. A failed
// share prints the server's message when one was provided.
func (r *Runner) UsersShare(ctx context.Context, cmd *cli.Command) error {
	listID := cmd.String("list")
	email := cmd.String("email")

	if r.api == nil {
		return fmt.Errorf("%w: service client not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("sharing playlist", "list", listID, "email", email)

	user, err := r.api.ShareUser(ctx, listID, email)
	if err != nil {
		var svcErr *api.Error
		if errors.As(err, &svcErr) && svcErr.Message != "" {
			return fmt.Errorf("%w: %s", shared.ErrAPIRequest, svcErr.Message)
		}
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Shared with %s\n", user.Email)
	r.writePlain("  ID: %s\n", user.UserID)

	return nil
}
