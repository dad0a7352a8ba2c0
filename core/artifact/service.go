package artifact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/pkg/log"
	"github.com/patrickmn/go-cache"
)

const (
	cacheTTL             = 30 * time.Second
	cacheCleanupInterval = time.Minute
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(context.Context, *domain.Artifact) error
	GetByPostID(ctx context.Context, postID string) (*domain.Artifact, error)
	GetByID(ctx context.Context, id string) (*domain.Artifact, error)
	IncrementViewCount(ctx context.Context, artifactID string) error
	AddWatchTime(ctx context.Context, sessionID string, deltaMs int64) error
}

//go:generate mockery --name=sessionStore --exported --with-expecter
type sessionStore interface {
	IncrementViewCount(ctx context.Context, sessionID string) error
}

//go:generate mockery --name=postStore --exported --with-expecter
type postStore interface {
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}

type Service struct {
	repo         repository
	sessionStore sessionStore
	postStore    postStore

	logger log.Logger
	cache  *cache.Cache
}

type ServiceDeps struct {
	Repository   repository
	SessionStore sessionStore
	PostStore    postStore

	Logger log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:         deps.Repository,
		sessionStore: deps.SessionStore,
		postStore:    deps.PostStore,
		logger:       deps.Logger,
		cache:        cache.New(cacheTTL, cacheCleanupInterval),
	}
}

// Ensure returns the post's artifact, creating it if this is the first
// feedback action on the post. The workspace and per-post feedback flags are
// re-checked on every call, so disabling feedback on a post closes it for new
// sessions and comments even after its artifact exists. Creation snapshots the
// post's current image attachments as frames; a concurrent-create race is
// resolved by the unique constraint on post_id with the loser falling back to
// a re-read.
func (s *Service) Ensure(ctx context.Context, cfg domain.FeedbackConfig, postID string, actor domain.Actor) (*domain.Artifact, error) {
	cfg = cfg.Clamped()
	if !cfg.Enabled {
		return nil, ErrFeedbackDisabled
	}

	post, err := s.postStore.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.FeedbackDisabled {
		return nil, ErrFeedbackDisabled
	}

	existing, err := s.repo.GetByPostID(ctx, postID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrArtifactNotFound) {
		return nil, fmt.Errorf("looking up artifact for post %q: %w", postID, err)
	}

	images := post.ImageAttachments()
	if len(images) == 0 {
		return nil, ErrNoImageFrames
	}

	a := &domain.Artifact{
		PostID:         postID,
		CreatedByID:    actor.ID,
		FrameSignature: FrameSignature(images),
	}
	for i, img := range images {
		a.Frames = append(a.Frames, &domain.Frame{
			AttachmentID: img.ID,
			URL:          img.URL,
			ThumbnailURL: img.ThumbnailURL,
			Width:        img.Width,
			Height:       img.Height,
			Order:        i,
		})
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, ErrDuplicateArtifact) {
			s.logger.Info(ctx, "lost artifact creation race, re-reading", "post_id", postID)
			return s.repo.GetByPostID(ctx, postID)
		}
		return nil, fmt.Errorf("creating artifact for post %q: %w", postID, err)
	}

	s.cache.Set(postID, a, cache.DefaultExpiration)
	return a, nil
}

// Get returns the post's artifact if one exists. Frames are immutable after
// creation, so results are served from a short-lived cache.
func (s *Service) Get(ctx context.Context, postID string) (*domain.Artifact, error) {
	if cached, ok := s.cache.Get(postID); ok {
		return cached.(*domain.Artifact), nil
	}

	a, err := s.repo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(postID, a, cache.DefaultExpiration)
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Artifact, error) {
	return s.repo.GetByID(ctx, id)
}

// RecordView bumps view counters. A missing artifact is a silent no-op so the
// read path never fails a page load; a named session additionally gets its own
// counters bumped.
func (s *Service) RecordView(ctx context.Context, postID, sessionID string) error {
	a, err := s.repo.GetByPostID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrArtifactNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.IncrementViewCount(ctx, a.ID); err != nil {
		return fmt.Errorf("incrementing artifact view count: %w", err)
	}
	s.cache.Delete(postID)

	if sessionID != "" {
		if err := s.sessionStore.IncrementViewCount(ctx, sessionID); err != nil {
			return fmt.Errorf("incrementing session view count: %w", err)
		}
	}
	return nil
}

// RecordWatchTime adds deltaMs to both the session's and its artifact's watch
// time in one transaction. Deltas above the sanity ceiling are rejected to
// bound abuse from a single client report.
func (s *Service) RecordWatchTime(ctx context.Context, sessionID string, deltaMs int64) error {
	if deltaMs <= 0 || deltaMs > domain.MaxWatchTimeDeltaMs {
		return ErrInvalidWatchTimeDelta
	}
	return s.repo.AddWatchTime(ctx, sessionID, deltaMs)
}

// SignatureDrift reports whether the post's current image attachments no
// longer match the artifact's frozen frame set. Frames stay immutable; this is
// a detection hook only.
func (s *Service) SignatureDrift(ctx context.Context, postID string) (bool, error) {
	a, err := s.repo.GetByPostID(ctx, postID)
	if err != nil {
		return false, err
	}

	post, err := s.postStore.GetPost(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, ErrPostNotFound
	}

	return FrameSignature(post.ImageAttachments()) != a.FrameSignature, nil
}
