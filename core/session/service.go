package session

import (
	"context"
	"fmt"

	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/plugins/discussion"
	"github.com/goto/spotlight/plugins/notifiers"
)

// MaxAnnotationBatchSize bounds one append call; the client flushes a
// session's buffered events in a single batch on save.
const MaxAnnotationBatchSize = 500

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(context.Context, *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(context.Context, domain.ListSessionsFilter) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
	BulkInsertAnnotations(ctx context.Context, annotations []*domain.Annotation) error
	ListAnnotations(ctx context.Context, sessionID string) ([]*domain.Annotation, error)
}

//go:generate mockery --name=artifactService --exported --with-expecter
type artifactService interface {
	Ensure(ctx context.Context, cfg domain.FeedbackConfig, postID string, actor domain.Actor) (*domain.Artifact, error)
	GetByID(ctx context.Context, id string) (*domain.Artifact, error)
}

//go:generate mockery --name=postStore --exported --with-expecter
type postStore interface {
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}

//go:generate mockery --name=notifier --exported --with-expecter
type notifier interface {
	notifiers.Client
}

//go:generate mockery --name=discussionClient --exported --with-expecter
type discussionClient interface {
	discussion.Client
}

type Service struct {
	repo            repository
	artifactService artifactService
	postStore       postStore

	notifier   notifier
	discussion discussionClient
	logger     log.Logger
}

type ServiceDeps struct {
	Repository      repository
	ArtifactService artifactService
	PostStore       postStore

	Notifier         notifier
	DiscussionClient discussionClient
	Logger           log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:            deps.Repository,
		artifactService: deps.ArtifactService,
		postStore:       deps.PostStore,
		notifier:        deps.Notifier,
		discussion:      deps.DiscussionClient,
		logger:          deps.Logger,
	}
}

// Create persists a new session for the post's artifact, creating the
// artifact first if needed. VIDEO sessions carry recording metadata validated
// against the workspace limits; limits are clamped to the absolute ceilings
// before use.
func (s *Service) Create(ctx context.Context, cfg domain.FeedbackConfig, postID string, sessionType domain.SessionType, recording *domain.Recording, actor domain.Actor) (*domain.Session, error) {
	cfg = cfg.Clamped()

	switch sessionType {
	case domain.SessionTypeVideo:
		if recording == nil {
			return nil, ErrRecordingRequired
		}
		if recording.DurationMs > int64(cfg.MaxVideoDurationSeconds)*1000 {
			return nil, ErrDurationExceeded
		}
		if recording.Size > cfg.MaxVideoSizeBytes {
			return nil, ErrSizeExceeded
		}
	case domain.SessionTypeTextOnly:
		recording = nil
	default:
		return nil, ErrInvalidSessionType
	}

	a, err := s.artifactService.Ensure(ctx, cfg, postID, actor)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ArtifactID: a.ID,
		AuthorID:   actor.ID,
		Type:       sessionType,
		Recording:  recording,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		s.notifyAndMirror(ctx, a, session, actor)
	}()

	return session, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter domain.ListSessionsFilter) ([]*domain.Session, error) {
	if filter.OrderBy == nil {
		filter.OrderBy = []string{"created_at"}
	}
	return s.repo.List(ctx, filter)
}

// AppendAnnotations writes one batch of annotation events recorded by the
// session's author. The whole batch is validated against the artifact's frame
// set before anything is written; an invalid frame reference rejects every
// event in the batch.
func (s *Service) AppendAnnotations(ctx context.Context, sessionID string, events []*domain.Annotation, actor domain.Actor) ([]*domain.Annotation, error) {
	if len(events) == 0 {
		return nil, nil
	}
	if len(events) > MaxAnnotationBatchSize {
		return nil, ErrAnnotationBatchSize
	}

	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.AuthorID != actor.ID {
		return nil, ErrNotSessionAuthor
	}

	a, err := s.artifactService.GetByID(ctx, session.ArtifactID)
	if err != nil {
		return nil, fmt.Errorf("loading artifact %q: %w", session.ArtifactID, err)
	}

	for _, e := range events {
		if e.FrameID != "" && a.FrameByID(e.FrameID) == nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFrame, e.FrameID)
		}
		if e.Tool == domain.AnnotationToolFrameChange {
			if target, ok := e.Payload["frame_id"].(string); ok && target != "" && a.FrameByID(target) == nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidFrame, target)
			}
		}
		e.SessionID = session.ID
	}

	if err := s.repo.BulkInsertAnnotations(ctx, events); err != nil {
		return nil, fmt.Errorf("appending annotations: %w", err)
	}
	return events, nil
}

func (s *Service) ListAnnotations(ctx context.Context, sessionID string) ([]*domain.Annotation, error) {
	if _, err := s.repo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.repo.ListAnnotations(ctx, sessionID)
}

// Delete removes a session. Allowed for the session author, the post author,
// or a privileged actor. Ownership is re-read immediately before the delete so
// the check never acts on stale data.
func (s *Service) Delete(ctx context.Context, sessionID string, actor domain.Actor) error {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.AuthorID != actor.ID && !actor.IsPrivileged() {
		a, err := s.artifactService.GetByID(ctx, session.ArtifactID)
		if err != nil {
			return fmt.Errorf("loading artifact %q: %w", session.ArtifactID, err)
		}
		post, err := s.postStore.GetPost(ctx, a.PostID)
		if err != nil {
			return fmt.Errorf("loading post %q: %w", a.PostID, err)
		}
		if post == nil || post.AuthorID != actor.ID {
			return ErrDeleteForbidden
		}
	}

	return s.repo.Delete(ctx, sessionID)
}

func (s *Service) notifyAndMirror(ctx context.Context, a *domain.Artifact, session *domain.Session, actor domain.Actor) {
	post, err := s.postStore.GetPost(ctx, a.PostID)
	if err != nil || post == nil {
		s.logger.Error(ctx, "failed to load post for session notification", "error", err, "post_id", a.PostID)
		return
	}

	if post.AuthorID != actor.ID {
		notifications := []domain.Notification{{
			User: post.AuthorID,
			Message: domain.NotificationMessage{
				Type: domain.NotificationTypeFeedbackSession,
				Variables: map[string]interface{}{
					"actor_id":   actor.ID,
					"post_id":    post.ID,
					"session_id": session.ID,
				},
			},
		}}
		if errs := s.notifier.Notify(ctx, notifications); errs != nil {
			for _, err := range errs {
				s.logger.Error(ctx, "failed to send notifications", "error", err.Error())
			}
		}
	}

	summary := "Added visual feedback"
	if session.Type == domain.SessionTypeVideo && session.Recording != nil {
		summary = fmt.Sprintf("Added visual feedback video (%ds)", session.Recording.DurationMs/1000)
	}

	mirrored := discussion.Comment{
		PostID:   post.ID,
		AuthorID: actor.ID,
		Body:     discussion.PlainText(summary),
		Metadata: discussion.Metadata{
			Source:            discussion.SourceVisualFeedback,
			EntryType:         discussion.EntryTypeSession,
			FeedbackSessionID: session.ID,
		},
	}
	if first := a.FirstFrame(); first != nil {
		mirrored.AttachmentID = first.AttachmentID
		mirrored.Metadata.FrameID = first.ID
	}
	if err := s.discussion.CreateComment(ctx, mirrored); err != nil {
		s.logger.Error(ctx, "failed to mirror session to discussion", "error", err, "session_id", session.ID)
	}
}
