// Package models defines the values exchanged with the file-storage service.
package models

import "io"

// UploadForm is the multipart body of an upload: the uploader id plus the
// file content under its original name.
type UploadForm struct {
	UserID   string
	FileName string
	Content  io.Reader
}

type DownloadByNameRequest struct {
	FileName string `json:"file_name"`
	UserID   string `json:"user_id"`
}

type DownloadFromURLRequest struct {
	FileURL string `json:"file_url"`
	UserID  string `json:"user_id"`
}
