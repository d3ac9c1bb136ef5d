// Package filex contains small filesystem helpers for the download area.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// EnsureDir creates dir (and parents) if needed and returns its absolute
// path. Relative paths are resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

var unsafeNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// SanitizeName turns a server-side file name into something safe to create
// inside the download directory. Path separators and characters rejected by
// common filesystems become underscores.
func SanitizeName(name string) string {
	name = unsafeNameChars.ReplaceAllString(strings.TrimSpace(name), "_")
	switch name {
	case "", ".", "..":
		return "download"
	}
	return name
}
