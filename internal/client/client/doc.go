// Package client talks to the file-storage service over HTTP.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the four
//     service endpoints: Upload, DownloadByName, DownloadFromURL, ListFiles.
//  2. A net/http implementation (see HTTPClient). Every call goes through a
//     single helper that stamps a request id, logs the exchange and
//     classifies transport failures.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable; bodies that are not a JSON object
// wrap ErrDecode. Server-reported logical errors are not returned by the
// client itself: replies carry their status code and callers turn them into
// *StatusError when appropriate. All of these can be matched with errors.Is
// and errors.As.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
