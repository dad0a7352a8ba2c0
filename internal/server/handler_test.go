package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goto/spotlight/internal/server"
	"github.com/goto/spotlight/pkg/log"
	"github.com/stretchr/testify/assert"
)

func newTestHandler() *server.Handler {
	cfg := &server.Config{
		Auth: server.Auth{IDHeaderKey: "X-Auth-Id", RoleHeaderKey: "X-Auth-Role"},
	}
	return server.NewHandler(cfg, &server.Services{}, log.NewNoop())
}

func TestHandler_Healthz(t *testing.T) {
	router := newTestHandler().Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_BadRequestBody(t *testing.T) {
	router := newTestHandler().Router()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/comments"},
		{http.MethodPost, "/api/v1/posts/post-1/sessions"},
		{http.MethodPost, "/api/v1/sessions/session-1/annotations"},
		{http.MethodPost, "/api/v1/sessions/session-1/watch-time"},
		{http.MethodPut, "/api/v1/comments/comment-1/status"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, rec.Body.String(), "invalid request body")
	}
}

func TestHandler_UnknownRoute(t *testing.T) {
	router := newTestHandler().Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
