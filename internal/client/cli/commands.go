package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/filedesk/internal/client/services"
)

func (a *App) Upload(ctx context.Context, args []string) error {
	ctx = withRequestID(ctx)
	a.activate(tabUpload)

	path, err := a.prompt(ctx, args, 0, "File to upload:")
	if err != nil {
		return err
	}
	userID, err := a.prompt(ctx, args, 1, "Your user ID:")
	if err != nil {
		return err
	}

	res, err := a.files.Upload(ctx, userID, path)
	if err != nil {
		return a.report(ctx, opUpload, err)
	}

	a.setPane(tabUpload, renderRaw(res.Reply.Raw))

	if err := res.Err(); err != nil {
		return a.report(ctx, opUpload, err)
	}

	a.logger.Info(ctx, "upload finished", "path", path, "duplicate", res.Duplicate)
	a.notifier.Notify(ctx, res.Notice())
	return nil
}

func (a *App) DownloadByName(ctx context.Context, args []string) error {
	ctx = withRequestID(ctx)
	a.activate(tabDownloadName)

	name, err := a.prompt(ctx, args, 0, "File name:")
	if err != nil {
		return err
	}
	userID, err := a.prompt(ctx, args, 1, "Your user ID:")
	if err != nil {
		return err
	}

	res, err := a.files.DownloadByName(ctx, name, userID)
	if err != nil {
		return a.report(ctx, opDownload, err)
	}

	if res.Reply != nil {
		a.setPane(tabDownloadName, renderRaw(res.Reply.Raw))
		return nil
	}

	a.logger.Info(ctx, "file saved", "name", name, "path", res.SavedPath)
	a.panes[tabDownloadName] = fmt.Sprintf("Saved to %s", res.SavedPath)
	a.notifier.Notify(ctx, fmt.Sprintf("%s Saved to %s", services.MsgDownloadSucceeded, res.SavedPath))
	return nil
}

func (a *App) DownloadFromURL(ctx context.Context, args []string) error {
	ctx = withRequestID(ctx)
	a.activate(tabDownloadURL)

	rawURL, err := a.prompt(ctx, args, 0, "File URL:")
	if err != nil {
		return err
	}
	userID, err := a.prompt(ctx, args, 1, "Your user ID:")
	if err != nil {
		return err
	}

	res, err := a.files.DownloadFromURL(ctx, rawURL, userID)
	if err != nil {
		return a.report(ctx, opFetch, err)
	}

	text, err := renderRecord(res.Record)
	if err != nil {
		return a.report(ctx, opFetch, err)
	}
	a.setPane(tabDownloadURL, text)

	return a.report(ctx, opFetch, res.Err())
}

func (a *App) ListFiles(ctx context.Context) error {
	ctx = withRequestID(ctx)
	a.activate(tabFiles)

	files, err := a.files.ListFiles(ctx)
	if err != nil {
		return a.report(ctx, opList, err)
	}

	a.setPane(tabFiles, renderFiles(files))
	return nil
}
