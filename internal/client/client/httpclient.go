package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filedesk/internal/client/models"
	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/netx"
)

// maxReplySize caps JSON bodies; attachments are streamed and not limited.
const maxReplySize = 8 << 20

type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     logging.Logger
}

// NewHTTPClient returns a client for the service rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server url %q: missing host", baseURL)
	}

	return &HTTPClient{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "http_client"),
	}, nil
}

func (c *HTTPClient) endpoint(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = ""
	return u.String()
}

// do sends req and classifies transport failures. Every request carries the
// context's request id, or a fresh one.
func (c *HTTPClient) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	id := logging.RequestIDFrom(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = logging.WithRequestID(ctx, id)
	}
	req.Header.Set(common.RequestIDHeaderName, id)
	req.Header.Set("User-Agent", common.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, req.URL.Path, err)
	}

	c.logger.Debug(ctx, "request done",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(ctx, req)
}

// decodeReply reads a JSON object body regardless of status. The body is
// always closed.
func decodeReply(resp *http.Response) (*models.Reply, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	if len(raw) > maxReplySize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrDecode, maxReplySize)
	}

	var rec models.Record
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()
	if err := d.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: status %d: %v", ErrDecode, resp.StatusCode, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: status %d: not a JSON object", ErrDecode, resp.StatusCode)
	}

	return &models.Reply{
		StatusCode: resp.StatusCode,
		Raw:        json.RawMessage(bytes.TrimSpace(raw)),
		Record:     rec,
	}, nil
}

func (c *HTTPClient) Upload(ctx context.Context, form models.UploadForm) (*models.Reply, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeUploadForm(mw, form))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(common.PathUpload), pr)
	if err != nil {
		pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, req)
	// unblocks the writer if the transport stopped reading early
	pr.Close()
	if err != nil {
		return nil, err
	}
	return decodeReply(resp)
}

func writeUploadForm(mw *multipart.Writer, form models.UploadForm) error {
	if err := mw.WriteField("user_id", form.UserID); err != nil {
		return err
	}
	part, err := mw.CreateFormFile("file", form.FileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, form.Content); err != nil {
		return fmt.Errorf("read upload content: %w", err)
	}
	return mw.Close()
}

func (c *HTTPClient) DownloadByName(ctx context.Context, r models.DownloadByNameRequest) (*models.Download, error) {
	resp, err := c.postJSON(ctx, common.PathDownloadByName, r)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		if name, ok := netx.Attachment(resp.Header); ok {
			return &models.Download{Attachment: &models.Attachment{Filename: name, Body: resp.Body}}, nil
		}
	}

	reply, err := decodeReply(resp)
	if err != nil {
		return nil, err
	}
	return &models.Download{Reply: reply}, nil
}

func (c *HTTPClient) DownloadFromURL(ctx context.Context, r models.DownloadFromURLRequest) (*models.Reply, error) {
	resp, err := c.postJSON(ctx, common.PathDownloadFromURL, r)
	if err != nil {
		return nil, err
	}
	return decodeReply(resp)
}

func (c *HTTPClient) ListFiles(ctx context.Context) (*models.Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(common.PathGetFiles), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeReply(resp)
}
