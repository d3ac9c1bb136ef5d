package models

import "io"

// Attachment is a binary response body the server asked to be saved.
type Attachment struct {
	// Filename is the name suggested by Content-Disposition, if any.
	Filename string
	Body     io.ReadCloser
}

// Download is the outcome of a download-by-name call: exactly one of
// Attachment and Reply is set.
type Download struct {
	Attachment *Attachment
	Reply      *Reply
}

// Close releases the attachment body, if any.
func (d *Download) Close() error {
	if d == nil || d.Attachment == nil || d.Attachment.Body == nil {
		return nil
	}
	return d.Attachment.Body.Close()
}
