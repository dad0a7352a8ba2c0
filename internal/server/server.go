package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/spotlight/core/artifact"
	"github.com/goto/spotlight/core/comment"
	"github.com/goto/spotlight/core/session"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
)

// RunServer wires the feedback services and serves the JSON API until ctx is
// cancelled.
func RunServer(ctx context.Context, config *Config, logger log.Logger, deps ServiceDeps) error {
	services, err := InitServices(deps)
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}

	handler := NewHandler(config, services, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server started", "port", config.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler exposes the feedback services over a JSON API. Authentication is
// terminated upstream; the actor arrives in trusted headers.
type Handler struct {
	config   *Config
	services *Services
	logger   log.Logger
}

func NewHandler(config *Config, services *Services, logger log.Logger) *Handler {
	return &Handler{config: config, services: services, logger: logger}
}

func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /api/v1/posts/{postID}/artifact", h.ensureArtifact)
	mux.HandleFunc("POST /api/v1/posts/{postID}/views", h.recordView)
	mux.HandleFunc("POST /api/v1/posts/{postID}/sessions", h.createSession)
	mux.HandleFunc("GET /api/v1/artifacts/{artifactID}/sessions", h.listSessions)
	mux.HandleFunc("GET /api/v1/artifacts/{artifactID}/comments", h.listComments)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/annotations", h.appendAnnotations)
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/annotations", h.listAnnotations)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/watch-time", h.recordWatchTime)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}", h.deleteSession)
	mux.HandleFunc("POST /api/v1/comments", h.createComment)
	mux.HandleFunc("PUT /api/v1/comments/{commentID}/status", h.setCommentStatus)
	mux.HandleFunc("DELETE /api/v1/comments/{commentID}", h.deleteComment)

	return mux
}

func (h *Handler) actor(r *http.Request) domain.Actor {
	return domain.Actor{
		ID:   r.Header.Get(h.config.Auth.IDHeaderKey),
		Role: domain.Role(r.Header.Get(h.config.Auth.RoleHeaderKey)),
	}
}

func (h *Handler) ensureArtifact(w http.ResponseWriter, r *http.Request) {
	a, err := h.services.ArtifactService.Ensure(r.Context(), h.config.Feedback, r.PathValue("postID"), h.actor(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

func (h *Handler) recordView(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.services.ArtifactService.RecordView(r.Context(), r.PathValue("postID"), body.SessionID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type      domain.SessionType `json:"type"`
		Recording *domain.Recording  `json:"recording,omitempty"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.services.SessionService.Create(r.Context(), h.config.Feedback, r.PathValue("postID"), body.Type, body.Recording, h.actor(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.services.SessionService.List(r.Context(), domain.ListSessionsFilter{
		ArtifactID: r.PathValue("artifactID"),
		AuthorID:   r.URL.Query().Get("author_id"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sessions)
}

func (h *Handler) appendAnnotations(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Annotations []*domain.Annotation `json:"annotations"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	inserted, err := h.services.SessionService.AppendAnnotations(r.Context(), r.PathValue("sessionID"), body.Annotations, h.actor(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, inserted)
}

func (h *Handler) listAnnotations(w http.ResponseWriter, r *http.Request) {
	annotations, err := h.services.SessionService.ListAnnotations(r.Context(), r.PathValue("sessionID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, annotations)
}

func (h *Handler) recordWatchTime(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DeltaMs int64 `json:"delta_ms"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.services.ArtifactService.RecordWatchTime(r.Context(), r.PathValue("sessionID"), body.DeltaMs); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SessionService.Delete(r.Context(), r.PathValue("sessionID"), h.actor(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PostID      string               `json:"post_id"`
		FrameID     string               `json:"frame_id"`
		Region      domain.Region        `json:"region"`
		Body        string               `json:"body,omitempty"`
		Audio       *domain.CommentAudio `json:"audio,omitempty"`
		SessionID   string               `json:"session_id,omitempty"`
		ParentID    string               `json:"parent_id,omitempty"`
		TimestampMs *int64               `json:"timestamp_ms,omitempty"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.services.CommentService.Create(r.Context(), h.config.Feedback, comment.CreateCommentInput{
		PostID:      body.PostID,
		FrameID:     body.FrameID,
		Region:      body.Region,
		Body:        body.Body,
		Audio:       body.Audio,
		SessionID:   body.SessionID,
		ParentID:    body.ParentID,
		TimestampMs: body.TimestampMs,
		Actor:       h.actor(r),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	comments, err := h.services.CommentService.List(r.Context(), domain.ListCommentsFilter{
		ArtifactID: r.PathValue("artifactID"),
		FrameID:    q.Get("frame_id"),
		SessionID:  q.Get("session_id"),
		Status:     domain.CommentStatus(q.Get("status")),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, comments)
}

func (h *Handler) setCommentStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.CommentStatus `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.services.CommentService.SetStatus(r.Context(), r.PathValue("commentID"), body.Status, h.actor(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CommentService.Delete(r.Context(), r.PathValue("commentID"), h.actor(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var errBadRequest = errors.New("invalid request body")

func decodeJSON(r *http.Request, out interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s", errBadRequest, err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, artifact.ErrPostNotFound),
		errors.Is(err, artifact.ErrArtifactNotFound),
		errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, comment.ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, artifact.ErrFeedbackDisabled),
		errors.Is(err, session.ErrNotSessionAuthor),
		errors.Is(err, session.ErrDeleteForbidden),
		errors.Is(err, comment.ErrStatusForbidden),
		errors.Is(err, comment.ErrDeleteForbidden):
		return http.StatusForbidden
	case errors.Is(err, artifact.ErrNoImageFrames),
		errors.Is(err, artifact.ErrInvalidWatchTimeDelta),
		errors.Is(err, session.ErrInvalidSessionType),
		errors.Is(err, session.ErrRecordingRequired),
		errors.Is(err, session.ErrDurationExceeded),
		errors.Is(err, session.ErrSizeExceeded),
		errors.Is(err, session.ErrAnnotationBatchSize),
		errors.Is(err, session.ErrInvalidFrame),
		errors.Is(err, comment.ErrEmptyContent),
		errors.Is(err, comment.ErrAudioTooLong),
		errors.Is(err, comment.ErrInvalidRegion),
		errors.Is(err, comment.ErrInvalidFrame),
		errors.Is(err, comment.ErrInvalidSession),
		errors.Is(err, comment.ErrInvalidParent),
		errors.Is(err, comment.ErrTimestampWithoutSession),
		errors.Is(err, comment.ErrNestingTooDeep),
		errors.Is(err, comment.ErrInvalidStatus),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
