package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/plugins/discussion"
	"github.com/goto/spotlight/plugins/notifiers"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(context.Context, *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	List(context.Context, domain.ListCommentsFilter) ([]*domain.Comment, error)
	UpdateStatus(context.Context, *domain.Comment) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name=artifactService --exported --with-expecter
type artifactService interface {
	Ensure(ctx context.Context, cfg domain.FeedbackConfig, postID string, actor domain.Actor) (*domain.Artifact, error)
	GetByID(ctx context.Context, id string) (*domain.Artifact, error)
}

//go:generate mockery --name=sessionService --exported --with-expecter
type sessionService interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
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
	sessionService  sessionService
	postStore       postStore

	notifier   notifier
	discussion discussionClient
	logger     log.Logger
	timeNow    func() time.Time
}

type ServiceDeps struct {
	Repository      repository
	ArtifactService artifactService
	SessionService  sessionService
	PostStore       postStore

	Notifier         notifier
	DiscussionClient discussionClient
	Logger           log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:            deps.Repository,
		artifactService: deps.ArtifactService,
		sessionService:  deps.SessionService,
		postStore:       deps.PostStore,
		notifier:        deps.Notifier,
		discussion:      deps.DiscussionClient,
		logger:          deps.Logger,
		timeNow:         time.Now,
	}
}

// CreateCommentInput carries the caller-provided fields of a new feedback
// comment.
type CreateCommentInput struct {
	PostID      string
	FrameID     string
	Region      domain.Region
	Body        string
	Audio       *domain.CommentAudio
	SessionID   string
	ParentID    string
	TimestampMs *int64
	Actor       domain.Actor
}

// Create validates and persists one region-anchored comment, then notifies
// the post author (and, for replies, the parent author) and mirrors top-level
// comments into the discussion feed.
func (s *Service) Create(ctx context.Context, cfg domain.FeedbackConfig, in CreateCommentInput) (*domain.Comment, error) {
	cfg = cfg.Clamped()

	if in.Body == "" && in.Audio == nil {
		return nil, ErrEmptyContent
	}
	if in.Audio != nil && in.Audio.DurationSec > cfg.MaxAudioDurationSeconds {
		return nil, ErrAudioTooLong
	}
	if !in.Region.Valid() {
		return nil, ErrInvalidRegion
	}
	if in.TimestampMs != nil && in.SessionID == "" {
		return nil, ErrTimestampWithoutSession
	}

	a, err := s.artifactService.Ensure(ctx, cfg, in.PostID, in.Actor)
	if err != nil {
		return nil, err
	}
	if a.FrameByID(in.FrameID) == nil {
		return nil, ErrInvalidFrame
	}

	if in.SessionID != "" {
		sess, err := s.sessionService.Get(ctx, in.SessionID)
		if err != nil {
			return nil, err
		}
		if sess.ArtifactID != a.ID {
			return nil, ErrInvalidSession
		}
	}

	var parent *domain.Comment
	if in.ParentID != "" {
		parent, err = s.repo.GetByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.ArtifactID != a.ID {
			return nil, ErrInvalidParent
		}
		if parent.IsReply() {
			return nil, ErrNestingTooDeep
		}
	}

	c := &domain.Comment{
		ArtifactID:  a.ID,
		FrameID:     in.FrameID,
		SessionID:   in.SessionID,
		ParentID:    in.ParentID,
		AuthorID:    in.Actor.ID,
		Body:        in.Body,
		Audio:       in.Audio,
		Region:      in.Region,
		TimestampMs: in.TimestampMs,
		Status:      domain.CommentStatusOpen,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		s.notifyAndMirror(ctx, a, c, parent, in.Actor)
	}()

	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	if filter.OrderBy == nil {
		filter.OrderBy = []string{"created_at"}
	}
	return s.repo.List(ctx, filter)
}

// SetStatus flips a comment between OPEN and RESOLVED. Only the post author or
// a privileged actor may change status; resolution is revocable, not a delete.
func (s *Service) SetStatus(ctx context.Context, commentID string, status domain.CommentStatus, actor domain.Actor) (*domain.Comment, error) {
	if status != domain.CommentStatusOpen && status != domain.CommentStatusResolved {
		return nil, ErrInvalidStatus
	}

	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	post, err := s.postForArtifact(ctx, c.ArtifactID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID && !actor.IsPrivileged() {
		return nil, ErrStatusForbidden
	}

	c.Status = status
	if status == domain.CommentStatusResolved {
		now := s.timeNow()
		c.ResolvedAt = &now
		c.ResolvedByID = actor.ID
	} else {
		c.ResolvedAt = nil
		c.ResolvedByID = ""
	}

	if err := s.repo.UpdateStatus(ctx, c); err != nil {
		return nil, fmt.Errorf("updating comment status: %w", err)
	}

	if status == domain.CommentStatusResolved && c.AuthorID != actor.ID {
		go func() {
			ctx := context.WithoutCancel(ctx)
			notifications := []domain.Notification{{
				User: c.AuthorID,
				Message: domain.NotificationMessage{
					Type: domain.NotificationTypeFeedbackResolved,
					Variables: map[string]interface{}{
						"actor_id":   actor.ID,
						"post_id":    post.ID,
						"comment_id": c.ID,
					},
				},
			}}
			if errs := s.notifier.Notify(ctx, notifications); errs != nil {
				for _, err := range errs {
					s.logger.Error(ctx, "failed to send notifications", "error", err.Error())
				}
			}
		}()
	}

	return c, nil
}

// Delete removes a comment and its replies. Allowed for the comment author,
// the post author, or a privileged actor; ownership is re-read right before
// the delete.
func (s *Service) Delete(ctx context.Context, commentID string, actor domain.Actor) error {
	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if c.AuthorID != actor.ID && !actor.IsPrivileged() {
		post, err := s.postForArtifact(ctx, c.ArtifactID)
		if err != nil {
			return err
		}
		if post.AuthorID != actor.ID {
			return ErrDeleteForbidden
		}
	}

	return s.repo.Delete(ctx, commentID)
}

func (s *Service) postForArtifact(ctx context.Context, artifactID string) (*domain.Post, error) {
	a, err := s.artifactService.GetByID(ctx, artifactID)
	if err != nil {
		return nil, fmt.Errorf("loading artifact %q: %w", artifactID, err)
	}
	post, err := s.postStore.GetPost(ctx, a.PostID)
	if err != nil {
		return nil, fmt.Errorf("loading post %q: %w", a.PostID, err)
	}
	if post == nil {
		return nil, fmt.Errorf("post %q not found", a.PostID)
	}
	return post, nil
}

func (s *Service) notifyAndMirror(ctx context.Context, a *domain.Artifact, c *domain.Comment, parent *domain.Comment, actor domain.Actor) {
	post, err := s.postStore.GetPost(ctx, a.PostID)
	if err != nil || post == nil {
		s.logger.Error(ctx, "failed to load post for comment notification", "error", err, "post_id", a.PostID)
		return
	}

	var notifications []domain.Notification
	if post.AuthorID != actor.ID {
		notifications = append(notifications, domain.Notification{
			User: post.AuthorID,
			Message: domain.NotificationMessage{
				Type: domain.NotificationTypeFeedbackComment,
				Variables: map[string]interface{}{
					"actor_id":   actor.ID,
					"post_id":    post.ID,
					"comment_id": c.ID,
				},
			},
		})
	}
	if parent != nil && parent.AuthorID != actor.ID && parent.AuthorID != post.AuthorID {
		notifications = append(notifications, domain.Notification{
			User: parent.AuthorID,
			Message: domain.NotificationMessage{
				Type: domain.NotificationTypeFeedbackReply,
				Variables: map[string]interface{}{
					"actor_id":   actor.ID,
					"post_id":    post.ID,
					"comment_id": c.ID,
				},
			},
		})
	}
	if len(notifications) > 0 {
		if errs := s.notifier.Notify(ctx, notifications); errs != nil {
			for _, err := range errs {
				s.logger.Error(ctx, "failed to send notifications", "error", err.Error())
			}
		}
	}

	// replies stay inside the feedback thread; only top-level comments are
	// mirrored into the activity feed
	if c.IsReply() {
		return
	}

	summary := "Left feedback on a frame"
	if c.Body == "" && c.Audio != nil {
		summary = "Left an audio comment on a frame"
	}

	mirrored := discussion.Comment{
		PostID:   post.ID,
		AuthorID: actor.ID,
		Body:     discussion.PlainText(summary),
		Metadata: discussion.Metadata{
			Source:            discussion.SourceVisualFeedback,
			EntryType:         discussion.EntryTypeComment,
			FeedbackCommentID: c.ID,
			FrameID:           c.FrameID,
		},
	}
	if frame := a.FrameByID(c.FrameID); frame != nil {
		mirrored.AttachmentID = frame.AttachmentID
	}
	if err := s.discussion.CreateComment(ctx, mirrored); err != nil {
		s.logger.Error(ctx, "failed to mirror comment to discussion", "error", err, "comment_id", c.ID)
	}
}
