package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/filedesk/internal/client/client"
	"github.com/dmitrijs2005/filedesk/internal/client/services"
)

// operation names a user action together with the messages shown when it
// fails without a server-provided explanation.
type operation struct {
	name string
	// statusFallback is shown for a server error that carries no message.
	statusFallback string
	// generic is shown for network, payload and local failures.
	generic string
}

var (
	opUpload = operation{
		name:           "upload",
		statusFallback: "An error occurred while uploading the file.",
		generic:        "An error occurred while uploading the file.",
	}
	opDownload = operation{
		name:           "download_by_name",
		statusFallback: "An error occurred while downloading the file.",
		generic:        "An error occurred while processing your request.",
	}
	opFetch = operation{
		name:           "download_from_url",
		statusFallback: "An error occurred while processing your request.",
		generic:        "An error occurred while processing your request.",
	}
	opList = operation{
		name:           "get_files",
		statusFallback: "An error occurred while fetching the files.",
		generic:        "An error occurred while fetching the files.",
	}
)

// report is the single path by which failures reach the user. It returns err
// unchanged so handlers can end with `return a.report(ctx, op, err)`.
func (a *App) report(ctx context.Context, op operation, err error) error {
	if err == nil {
		return nil
	}

	var ve *services.ValidationError
	var se *client.StatusError

	switch {
	case errors.As(err, &ve):
		a.logger.Debug(ctx, "input rejected", "op", op.name, "reason", ve.Message)
		a.notifier.Notify(ctx, ve.Message)

	case errors.As(err, &se):
		a.logger.Warn(ctx, "server reported an error", "op", op.name, "status", se.StatusCode, "message", se.Message)
		if se.Message != "" {
			a.notifier.Notify(ctx, se.Message)
		} else {
			a.notifier.Notify(ctx, op.statusFallback)
		}

	default:
		a.logger.Error(ctx, "operation failed", "op", op.name, "error", err)
		a.notifier.Notify(ctx, op.generic)
	}

	return err
}
