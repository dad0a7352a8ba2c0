package upload

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goto/spotlight/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	// PartSize is the fixed slice size of one multipart part.
	PartSize = 8 << 20

	defaultConcurrency = 4
	defaultPartRetries = 3
)

// MultipartUpload is the remote handle returned when a multipart upload is
// opened.
type MultipartUpload struct {
	Key      string
	UploadID string
}

// Part is one uploaded slice's completion record.
type Part struct {
	Number int32
	ETag   string
}

//go:generate mockery --name=Transport --with-expecter
type Transport interface {
	BeginMultipartUpload(ctx context.Context, filename, contentType string, size int64) (*MultipartUpload, error)
	GetPartUploadURL(ctx context.Context, key, uploadID string, partNumber int32) (string, error)
	CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []Part) (string, error)
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error
}

// Client uploads a recording blob as fixed-size parts through a bounded worker
// pool and finalizes (or aborts) the remote multipart object.
type Client struct {
	transport   Transport
	httpClient  *http.Client
	logger      log.Logger
	concurrency int
	partRetries int
	timeNow     func() time.Time
}

type ClientDeps struct {
	Transport  Transport
	HTTPClient *http.Client
	Logger     log.Logger

	// Concurrency and PartRetries fall back to the defaults when zero.
	Concurrency int
	PartRetries int
}

func NewClient(deps ClientDeps) *Client {
	c := &Client{
		transport:   deps.Transport,
		httpClient:  deps.HTTPClient,
		logger:      deps.Logger,
		concurrency: deps.Concurrency,
		partRetries: deps.PartRetries,
		timeNow:     time.Now,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = log.NewNoop()
	}
	if c.concurrency <= 0 {
		c.concurrency = defaultConcurrency
	}
	if c.partRetries <= 0 {
		c.partRetries = defaultPartRetries
	}
	return c
}

// Upload stores the blob and returns its public URL. The blob is split into
// ceil(size/PartSize) parts claimed off a shared counter by a fixed pool of
// workers; each part retries independently before failing the whole upload.
// Any terminal failure triggers one best-effort abort and returns the original
// error, so no open multipart upload is left behind silently.
func (c *Client) Upload(ctx context.Context, blob []byte, mimeType string) (string, error) {
	if len(blob) == 0 {
		return "", ErrEmptyBlob
	}

	filename := fmt.Sprintf("recording-%d%s", c.timeNow().UnixNano(), extensionFor(mimeType))
	mu, err := c.transport.BeginMultipartUpload(ctx, filename, mimeType, int64(len(blob)))
	if err != nil {
		return "", fmt.Errorf("%w: beginning multipart upload: %s", ErrUploadFailed, err)
	}

	totalParts := (len(blob) + PartSize - 1) / PartSize
	parts := make([]Part, totalParts)

	g, gctx := errgroup.WithContext(ctx)
	next := int32(-1)
	workers := c.concurrency
	if workers > totalParts {
		workers = totalParts
	}
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				idx := int(atomic.AddInt32(&next, 1))
				if idx >= totalParts {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}

				end := (idx + 1) * PartSize
				if end > len(blob) {
					end = len(blob)
				}
				part, err := c.uploadPart(gctx, mu, int32(idx+1), blob[idx*PartSize:end])
				if err != nil {
					return err
				}
				parts[idx] = part
			}
		})
	}
	if err := g.Wait(); err != nil {
		c.abort(ctx, mu)
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, err)
	}

	// parts are indexed by partNumber-1, so the list is already ordered with
	// no gaps regardless of worker completion order
	withETags := parts
	if !anyETag(parts) {
		c.logger.Warn(ctx, "no etags recovered from part uploads, completing without an explicit part list", "key", mu.Key)
		withETags = nil
	}

	publicURL, err := c.transport.CompleteMultipartUpload(ctx, mu.Key, mu.UploadID, withETags)
	if err != nil {
		c.abort(ctx, mu)
		return "", fmt.Errorf("%w: completing multipart upload: %s", ErrUploadFailed, err)
	}
	return publicURL, nil
}

func (c *Client) uploadPart(ctx context.Context, mu *MultipartUpload, partNumber int32, data []byte) (Part, error) {
	var lastErr error
	for attempt := 1; attempt <= c.partRetries; attempt++ {
		etag, err := c.putPart(ctx, mu, partNumber, data)
		if err == nil {
			return Part{Number: partNumber, ETag: etag}, nil
		}
		lastErr = err
		c.logger.Warn(ctx, "part upload attempt failed", "part", partNumber, "attempt", attempt, "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return Part{}, fmt.Errorf("uploading part %d: %w", partNumber, lastErr)
}

func (c *Client) putPart(ctx context.Context, mu *MultipartUpload, partNumber int32, data []byte) (string, error) {
	uploadURL, err := c.transport.GetPartUploadURL(ctx, mu.Key, mu.UploadID, partNumber)
	if err != nil {
		return "", fmt.Errorf("requesting part url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.ContentLength = int64(len(data))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("part upload returned %d", resp.StatusCode)
	}
	return strings.Trim(resp.Header.Get("ETag"), `"`), nil
}

func (c *Client) abort(ctx context.Context, mu *MultipartUpload) {
	if err := c.transport.AbortMultipartUpload(context.WithoutCancel(ctx), mu.Key, mu.UploadID); err != nil {
		c.logger.Warn(ctx, "failed to abort multipart upload", "key", mu.Key, "error", err)
	}
}

func anyETag(parts []Part) bool {
	for _, p := range parts {
		if p.ETag != "" {
			return true
		}
	}
	return false
}

func extensionFor(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "webm"):
		return ".webm"
	case strings.Contains(mimeType, "mp4"):
		return ".mp4"
	default:
		return ".bin"
	}
}
