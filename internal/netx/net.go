// Package netx holds HTTP helpers that are independent of any endpoint.
package netx

import (
	"mime"
	"net/http"
	"strings"
)

// Attachment reports whether h marks the response body as a downloadable
// attachment, and returns the suggested file name when one is present.
//
// Malformed Content-Disposition values still count as attachments when the
// token "attachment" appears in them.
func Attachment(h http.Header) (string, bool) {
	cd := h.Get("Content-Disposition")
	if cd == "" {
		return "", false
	}

	disposition, params, err := mime.ParseMediaType(cd)
	if err != nil {
		return "", strings.Contains(strings.ToLower(cd), "attachment")
	}
	if disposition != "attachment" {
		return "", false
	}
	return params["filename"], true
}
