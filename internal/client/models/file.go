package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type FileInfo struct {
	FileName   string `json:"file_name"`
	FilePath   string `json:"file_path"`
	UploadedBy Text   `json:"uploaded_by"`
}

type FileList struct {
	Files []FileInfo `json:"files"`
	Error string     `json:"error,omitempty"`
}

// Text is a JSON scalar read as a string. The service does not pin the type
// of user ids, so numbers and booleans are accepted too; null reads as "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	var v any
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*t = Text(value)
	case json.Number, bool:
		*t = Text(fmt.Sprint(value))
	default:
		return fmt.Errorf("text: unsupported JSON value %s", b)
	}
	return nil
}
