package services

import (
	"fmt"

	"github.com/dmitrijs2005/filedesk/internal/client/client"
	"github.com/dmitrijs2005/filedesk/internal/client/models"
)

type UploadResult struct {
	Reply      *models.Reply
	Message    string
	Duplicate  bool
	UploadedBy string
}

// Notice is the text shown to the user once the upload reply arrives.
func (r *UploadResult) Notice() string {
	if r.Duplicate {
		return fmt.Sprintf("Duplicate detected. Uploaded by user ID: %s", r.UploadedBy)
	}
	if r.Message != "" {
		return r.Message
	}
	return MsgUploadSucceeded
}

// Err is non-nil when the server rejected the upload. A duplicate report is
// not a rejection whatever its status.
func (r *UploadResult) Err() error {
	if r.Duplicate || r.Reply.OK() {
		return nil
	}
	return client.NewStatusError(r.Reply)
}

// DownloadResult carries either the path the attachment was saved to or the
// JSON reply the server sent instead.
type DownloadResult struct {
	SavedPath string
	Reply     *models.Reply
}

type FetchResult struct {
	StatusCode int
	// Record is the reply with the "users" field removed.
	Record models.Record
	reply  *models.Reply
}

func (r *FetchResult) Err() error {
	if r.reply.OK() {
		return nil
	}
	return client.NewStatusError(r.reply)
}
