package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/goto/spotlight/core/artifact"
	"github.com/goto/spotlight/core/session"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/internal/store/postgres/model"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type ArtifactRepository struct {
	db *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) *ArtifactRepository {
	return &ArtifactRepository{db}
}

// Create persists the artifact together with its frames in one transaction.
// Returns artifact.ErrDuplicateArtifact when an artifact for the same post already
// exists, so the caller can fall back to a re-read.
func (r *ArtifactRepository) Create(ctx context.Context, a *domain.Artifact) error {
	m := &model.Artifact{}
	if err := m.FromDomain(a); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return artifact.ErrDuplicateArtifact
			}
			return err
		}

		*a = *m.ToDomain()
		return nil
	})
}

func (r *ArtifactRepository) GetByPostID(ctx context.Context, postID string) (*domain.Artifact, error) {
	m := &model.Artifact{}
	db := r.db.WithContext(ctx).Preload("Frames", func(db *gorm.DB) *gorm.DB {
		return db.Order(`frames."order" ASC`)
	})
	if err := db.Where("post_id = ?", postID).Take(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, artifact.ErrArtifactNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *ArtifactRepository) GetByID(ctx context.Context, id string) (*domain.Artifact, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, artifact.ErrArtifactNotFound
	}

	m := &model.Artifact{}
	db := r.db.WithContext(ctx).Preload("Frames", func(db *gorm.DB) *gorm.DB {
		return db.Order(`frames."order" ASC`)
	})
	if err := db.Where("id = ?", uid).Take(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, artifact.ErrArtifactNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// IncrementViewCount bumps the artifact view counter and last viewed time.
func (r *ArtifactRepository) IncrementViewCount(ctx context.Context, artifactID string) error {
	uid, err := uuid.Parse(artifactID)
	if err != nil {
		return artifact.ErrArtifactNotFound
	}

	return r.db.WithContext(ctx).Model(&model.Artifact{}).
		Where("id = ?", uid).
		Updates(map[string]interface{}{
			"view_count":     gorm.Expr("view_count + 1"),
			"last_viewed_at": time.Now(),
		}).Error
}

// AddWatchTime increments both the session's and its artifact's watch-time
// counters inside a single transaction, so the two never drift apart under
// concurrent reports.
func (r *ArtifactRepository) AddWatchTime(ctx context.Context, sessionID string, deltaMs int64) error {
	uid, err := uuid.Parse(sessionID)
	if err != nil {
		return session.ErrSessionNotFound
	}

	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess := &model.Session{}
		if err := tx.Where("id = ?", uid).Take(sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return session.ErrSessionNotFound
			}
			return err
		}

		if err := tx.Model(&model.Session{}).
			Where("id = ?", uid).
			Updates(map[string]interface{}{
				"total_watch_ms": gorm.Expr("total_watch_ms + ?", deltaMs),
				"last_viewed_at": now,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&model.Artifact{}).
			Where("id = ?", sess.ArtifactID).
			Updates(map[string]interface{}{
				"total_watch_ms": gorm.Expr("total_watch_ms + ?", deltaMs),
				"last_viewed_at": now,
			}).Error
	})
}
