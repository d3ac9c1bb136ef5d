package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filedesk/internal/client/models"
)

const noFilesMessage = "No files found in the database."

// renderRaw indents a JSON document without reordering its keys.
func renderRaw(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// renderRecord prints r as indented JSON. Keys come out sorted.
func renderRecord(r models.Record) (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render reply: %w", err)
	}
	return string(b), nil
}

func renderFiles(files []models.FileInfo) string {
	if len(files) == 0 {
		return noFilesMessage
	}

	var sb strings.Builder
	for _, f := range files {
		fmt.Fprintf(&sb, "%s\n", f.FileName)
		fmt.Fprintf(&sb, "  Path: %s\n", f.FilePath)
		fmt.Fprintf(&sb, "  Uploaded by: %s\n", f.UploadedBy)
		sb.WriteString("----\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
