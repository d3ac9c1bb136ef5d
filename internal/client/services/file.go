package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/filedesk/internal/client/blob"
	"github.com/dmitrijs2005/filedesk/internal/client/client"
	"github.com/dmitrijs2005/filedesk/internal/client/models"
	"github.com/dmitrijs2005/filedesk/internal/client/s3ref"
	"github.com/dmitrijs2005/filedesk/internal/filex"
)

// hiddenFetchFields are dropped from download-from-URL replies before display.
var hiddenFetchFields = []string{"users"}

type FileService interface {
	Upload(ctx context.Context, userID, path string) (*UploadResult, error)
	DownloadByName(ctx context.Context, name, userID string) (*DownloadResult, error)
	DownloadFromURL(ctx context.Context, rawURL, userID string) (*FetchResult, error)
	ListFiles(ctx context.Context) ([]models.FileInfo, error)
}

// URLResolver rewrites references the server cannot fetch directly, such as
// s3://bucket/key, into URLs it can.
type URLResolver interface {
	Resolve(ctx context.Context, raw string) (string, error)
}

type fileService struct {
	client   client.Client
	blobs    *blob.Registry
	resolver URLResolver
}

// NewFileService returns a FileService. resolver may be nil, in which case
// s3 references are rejected.
func NewFileService(c client.Client, blobs *blob.Registry, resolver URLResolver) FileService {
	return &fileService{client: c, blobs: blobs, resolver: resolver}
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func (s *fileService) Upload(ctx context.Context, userID, path string) (*UploadResult, error) {
	if blank(userID, path) {
		return nil, invalid(MsgUploadFieldsRequired)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return nil, invalid(fmt.Sprintf("%s is a directory, not a file.", path))
	}

	reply, err := s.client.Upload(ctx, models.UploadForm{
		UserID:   strings.TrimSpace(userID),
		FileName: filepath.Base(path),
		Content:  f,
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", path, err)
	}

	res := &UploadResult{Reply: reply}
	res.Message, _ = reply.Record.Text("message")
	if res.Message == models.DuplicateMessage {
		res.Duplicate = true
		res.UploadedBy, _ = reply.Record.Text("uploaded_by")
	}

	return res, nil
}

func (s *fileService) DownloadByName(ctx context.Context, name, userID string) (*DownloadResult, error) {
	if blank(name, userID) {
		return nil, invalid(MsgDownloadFieldsRequired)
	}
	name = strings.TrimSpace(name)

	d, err := s.client.DownloadByName(ctx, models.DownloadByNameRequest{
		FileName: name,
		UserID:   strings.TrimSpace(userID),
	})
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", name, err)
	}
	defer d.Close()

	if d.Attachment == nil {
		// only a plain 200 carries a usable reply; any other status is an error
		if d.Reply.StatusCode != http.StatusOK {
			return nil, client.NewStatusError(d.Reply)
		}
		return &DownloadResult{Reply: d.Reply}, nil
	}

	obj, err := s.blobs.Create(d.Attachment.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", name, err)
	}
	defer s.blobs.Revoke(obj)

	saved, err := s.blobs.SaveAs(obj, filex.SanitizeName(name))
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", name, err)
	}

	return &DownloadResult{SavedPath: saved}, nil
}

func (s *fileService) DownloadFromURL(ctx context.Context, rawURL, userID string) (*FetchResult, error) {
	if blank(rawURL, userID) {
		return nil, invalid(MsgFetchFieldsRequired)
	}
	rawURL = strings.TrimSpace(rawURL)

	target := rawURL
	if s3ref.IsReference(rawURL) {
		if s.resolver == nil {
			return nil, invalid(MsgS3NotConfigured)
		}
		resolved, err := s.resolver.Resolve(ctx, rawURL)
		if errors.Is(err, s3ref.ErrInvalidReference) {
			return nil, invalid(MsgInvalidS3Reference)
		}
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", rawURL, err)
		}
		target = resolved
	}

	reply, err := s.client.DownloadFromURL(ctx, models.DownloadFromURLRequest{
		FileURL: target,
		UserID:  strings.TrimSpace(userID),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	return &FetchResult{
		StatusCode: reply.StatusCode,
		Record:     reply.Record.Without(hiddenFetchFields...),
		reply:      reply,
	}, nil
}

func (s *fileService) ListFiles(ctx context.Context) ([]models.FileInfo, error) {
	reply, err := s.client.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	if !reply.OK() {
		return nil, client.NewStatusError(reply)
	}

	var list models.FileList
	if err := json.NewDecoder(bytes.NewReader(reply.Raw)).Decode(&list); err != nil {
		return nil, fmt.Errorf("list files: %w: %v", client.ErrDecode, err)
	}
	if list.Error != "" {
		return nil, &client.StatusError{StatusCode: reply.StatusCode, Message: list.Error}
	}

	return list.Files, nil
}
