package netx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(kv ...string) http.Header {
	h := http.Header{}
	for i := 0; i+1 < len(kv); i += 2 {
		h.Set(kv[i], kv[i+1])
	}
	return h
}

func TestAttachment(t *testing.T) {
	tests := []struct {
		name     string
		h        http.Header
		wantName string
		wantOK   bool
	}{
		{name: "no header", h: header(), wantOK: false},
		{name: "attachment with filename", h: header("Content-Disposition", `attachment; filename="x"`), wantName: "x", wantOK: true},
		{name: "attachment without filename", h: header("Content-Disposition", "attachment"), wantOK: true},
		{name: "inline", h: header("Content-Disposition", `inline; filename="x.png"`), wantOK: false},
		{name: "upper case", h: header("Content-Disposition", `ATTACHMENT; filename=report.pdf`), wantName: "report.pdf", wantOK: true},
		{name: "malformed but attachment", h: header("Content-Disposition", `attachment; filename="unterminated`), wantOK: true},
		{name: "malformed inline", h: header("Content-Disposition", `inline; ;;`), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := Attachment(tt.h)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
