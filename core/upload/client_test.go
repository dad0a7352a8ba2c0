package upload_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goto/spotlight/core/upload"
	"github.com/goto/spotlight/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport scripts the four transport calls and records everything the
// client does with them.
type fakeTransport struct {
	mu sync.Mutex

	partURL      string
	beginErr     error
	partURLErr   error
	completeErr  error
	publicURL    string
	partURLCalls []int32
	completed    [][]upload.Part
	aborts       int
}

func (t *fakeTransport) BeginMultipartUpload(ctx context.Context, filename, contentType string, size int64) (*upload.MultipartUpload, error) {
	if t.beginErr != nil {
		return nil, t.beginErr
	}
	return &upload.MultipartUpload{Key: "uploads/" + filename, UploadID: "upload-1"}, nil
}

func (t *fakeTransport) GetPartUploadURL(ctx context.Context, key, uploadID string, partNumber int32) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.partURLErr != nil {
		return "", t.partURLErr
	}
	t.partURLCalls = append(t.partURLCalls, partNumber)
	return fmt.Sprintf("%s?partNumber=%d", t.partURL, partNumber), nil
}

func (t *fakeTransport) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []upload.Part) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed = append(t.completed, parts)
	if t.completeErr != nil {
		return "", t.completeErr
	}
	return t.publicURL, nil
}

func (t *fakeTransport) AbortMultipartUpload(ctx context.Context, key, uploadID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.aborts++
	return nil
}

// partServer accepts PUTs and can be told to fail the first N attempts per
// part or to strip ETags.
type partServer struct {
	mu            sync.Mutex
	failFirst     map[string]int
	noETags       bool
	received      map[string]int64
	totalAttempts int
}

func newPartServer() *partServer {
	return &partServer{failFirst: map[string]int{}, received: map[string]int64{}}
}

func (p *partServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		part := r.URL.Query().Get("partNumber")
		body, _ := io.ReadAll(r.Body)

		p.mu.Lock()
		p.totalAttempts++
		if p.failFirst[part] > 0 {
			p.failFirst[part]--
			p.mu.Unlock()
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		p.received[part] = int64(len(body))
		noETags := p.noETags
		p.mu.Unlock()

		if !noETags {
			w.Header().Set("ETag", `"etag-`+part+`"`)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestUpload(t *testing.T) {
	blob := make([]byte, upload.PartSize*2+upload.PartSize/2) // 3 parts

	t.Run("uploads ceil(size/partSize) parts and completes in order", func(t *testing.T) {
		server := newPartServer()
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		transport := &fakeTransport{partURL: ts.URL, publicURL: "https://cdn/recording.webm"}
		client := upload.NewClient(upload.ClientDeps{Transport: transport, Logger: log.NewNoop()})

		publicURL, err := client.Upload(context.Background(), blob, "video/webm")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/recording.webm", publicURL)

		require.Len(t, transport.completed, 1)
		parts := transport.completed[0]
		require.Len(t, parts, 3)
		for i, part := range parts {
			assert.Equal(t, int32(i+1), part.Number)
			assert.Equal(t, fmt.Sprintf("etag-%d", i+1), part.ETag)
		}
		assert.Equal(t, int64(upload.PartSize), server.received["1"])
		assert.Equal(t, int64(upload.PartSize), server.received["2"])
		assert.Equal(t, int64(upload.PartSize/2), server.received["3"])
		assert.Zero(t, transport.aborts)
	})

	t.Run("a part failing under the retry ceiling still completes", func(t *testing.T) {
		server := newPartServer()
		server.failFirst["2"] = 2
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		transport := &fakeTransport{partURL: ts.URL, publicURL: "https://cdn/recording.webm"}
		client := upload.NewClient(upload.ClientDeps{Transport: transport, Logger: log.NewNoop()})

		_, err := client.Upload(context.Background(), blob, "video/webm")
		require.NoError(t, err)
		assert.Zero(t, transport.aborts)
		assert.Equal(t, 5, server.totalAttempts) // 3 parts + 2 retries
	})

	t.Run("a part failing at the ceiling fails the upload with exactly one abort", func(t *testing.T) {
		server := newPartServer()
		server.failFirst["2"] = 3
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		transport := &fakeTransport{partURL: ts.URL}
		client := upload.NewClient(upload.ClientDeps{Transport: transport, Logger: log.NewNoop()})

		_, err := client.Upload(context.Background(), blob, "video/webm")
		require.ErrorIs(t, err, upload.ErrUploadFailed)
		assert.Equal(t, 1, transport.aborts)
		assert.Empty(t, transport.completed)
	})

	t.Run("completes without a part list when no etags were recoverable", func(t *testing.T) {
		server := newPartServer()
		server.noETags = true
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		transport := &fakeTransport{partURL: ts.URL, publicURL: "https://cdn/recording.webm"}
		client := upload.NewClient(upload.ClientDeps{Transport: transport, Logger: log.NewNoop()})

		publicURL, err := client.Upload(context.Background(), blob, "video/webm")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/recording.webm", publicURL)
		require.Len(t, transport.completed, 1)
		assert.Nil(t, transport.completed[0])
	})

	t.Run("aborts when completion fails and returns the original error", func(t *testing.T) {
		server := newPartServer()
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		transport := &fakeTransport{partURL: ts.URL, completeErr: errors.New("storage unavailable")}
		client := upload.NewClient(upload.ClientDeps{Transport: transport, Logger: log.NewNoop()})

		_, err := client.Upload(context.Background(), blob, "video/webm")
		require.ErrorIs(t, err, upload.ErrUploadFailed)
		assert.ErrorContains(t, err, "storage unavailable")
		assert.Equal(t, 1, transport.aborts)
	})

	t.Run("rejects an empty blob without touching the transport", func(t *testing.T) {
		transport := &fakeTransport{}
		client := upload.NewClient(upload.ClientDeps{Transport: transport, Logger: log.NewNoop()})

		_, err := client.Upload(context.Background(), nil, "video/webm")
		require.ErrorIs(t, err, upload.ErrEmptyBlob)
		assert.Empty(t, transport.partURLCalls)
	})

	t.Run("single small blob uploads as one part", func(t *testing.T) {
		server := newPartServer()
		ts := httptest.NewServer(server.handler())
		defer ts.Close()

		transport := &fakeTransport{partURL: ts.URL, publicURL: "https://cdn/tiny.webm"}
		client := upload.NewClient(upload.ClientDeps{Transport: transport, Logger: log.NewNoop()})

		_, err := client.Upload(context.Background(), []byte("tiny"), "video/webm")
		require.NoError(t, err)
		require.Len(t, transport.completed, 1)
		require.Len(t, transport.completed[0], 1)
		assert.Equal(t, int32(1), transport.completed[0][0].Number)
	})
}
