// Package common contains wire-level constants shared by the client layers.
package common

const (
	// RequestIDHeaderName carries the per-command request id to the server.
	RequestIDHeaderName = "X-Request-ID"

	// UserAgent identifies filedesk in outbound requests.
	UserAgent = "filedesk"
)

// Service endpoints, relative to the configured server URL.
const (
	PathUpload          = "/upload"
	PathDownloadByName  = "/download_by_name"
	PathDownloadFromURL = "/download_from_url"
	PathGetFiles        = "/get_files"
)
