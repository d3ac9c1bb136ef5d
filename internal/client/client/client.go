package client

import (
	"context"

	"github.com/dmitrijs2005/filedesk/internal/client/models"
)

type Client interface {
	Upload(ctx context.Context, form models.UploadForm) (*models.Reply, error)
	// DownloadByName returns an attachment only for a 200 response that
	// carries Content-Disposition: attachment. The caller must Close the
	// result.
	DownloadByName(ctx context.Context, req models.DownloadByNameRequest) (*models.Download, error)
	DownloadFromURL(ctx context.Context, req models.DownloadFromURLRequest) (*models.Reply, error)
	ListFiles(ctx context.Context) (*models.Reply, error)
}
