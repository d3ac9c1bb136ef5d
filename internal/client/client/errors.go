package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/filedesk/internal/client/models"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrDecode      = errors.New("malformed response")
)

// StatusError is a logical error reported by the server through a non-success
// status. Message is the server-provided text and may be empty.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// NewStatusError builds a StatusError from a reply, taking the message from
// its "error" field, or "message" when there is no "error".
func NewStatusError(r *models.Reply) *StatusError {
	msg, ok := r.Record.Text("error")
	if !ok {
		msg, _ = r.Record.Text("message")
	}
	return &StatusError{StatusCode: r.StatusCode, Message: msg}
}
