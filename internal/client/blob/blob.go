// Package blob holds downloaded bytes between the network read and the final
// save. An Object is a temporary file in the download directory that must be
// revoked once the save is done; the Registry tracks the unreleased ones.
package blob

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	tempPrefix = ".filedesk-"
	tempSuffix = ".part"

	// maxNameAttempts bounds the "name (n)" search in SaveAs.
	maxNameAttempts = 1000
)

var ErrRevoked = errors.New("object revoked")

type Object struct {
	ID   string
	Size int64
	path string
}

type Registry struct {
	dir  string
	mu   sync.Mutex
	live map[string]*Object
}

func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir, live: make(map[string]*Object)}
}

// Create copies src into a new tracked object. On failure nothing is left
// behind.
func (r *Registry) Create(src io.Reader) (*Object, error) {
	id := uuid.NewString()
	path := filepath.Join(r.dir, tempPrefix+id+tempSuffix)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create object: %w", err)
	}

	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write object: %w", err)
	}

	o := &Object{ID: id, Size: n, path: path}

	r.mu.Lock()
	r.live[id] = o
	r.mu.Unlock()

	return o, nil
}

// linkFile is a test seam for os.Link.
var linkFile = os.Link

// SaveAs moves the object content to name inside the registry directory.
// An existing file is never overwritten: "name (1).ext", "name (2).ext"…
// are tried instead. The object stays tracked until Revoke.
func (r *Registry) SaveAs(o *Object, name string) (string, error) {
	if !r.tracked(o) {
		return "", ErrRevoked
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		dest := filepath.Join(r.dir, candidate)

		// link fails with EEXIST instead of replacing a file that appeared
		// since the last attempt
		err := linkFile(o.path, dest)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("save %s: %w", candidate, err)
		}

		if err := os.Remove(o.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("release %s: %w", o.path, err)
		}
		return dest, nil
	}

	return "", fmt.Errorf("save %s: no free name", name)
}

// Revoke releases the object: any leftover temporary file is removed and the
// object is no longer tracked. Revoking nil or an already revoked object is
// a no-op.
func (r *Registry) Revoke(o *Object) error {
	if o == nil {
		return nil
	}

	r.mu.Lock()
	_, ok := r.live[o.ID]
	delete(r.live, o.ID)
	r.mu.Unlock()

	if !ok {
		return nil
	}

	if err := os.Remove(o.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("revoke object: %w", err)
	}
	return nil
}

// Live returns the number of objects created and not yet revoked.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

func (r *Registry) tracked(o *Object) bool {
	if o == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.live[o.ID]
	return ok
}

// IsTemp reports whether a file name belongs to an unreleased object.
func IsTemp(name string) bool {
	return strings.HasPrefix(name, tempPrefix) && strings.HasSuffix(name, tempSuffix)
}
