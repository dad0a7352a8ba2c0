package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/goto/spotlight/core/session"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/internal/store/postgres/model"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := &model.Session{}
	if err := m.FromDomain(s); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		*s = *m.ToDomain()
		return nil
	})
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, session.ErrSessionNotFound
	}

	m := &model.Session{}
	if err := r.db.WithContext(ctx).Where("id = ?", uid).Take(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrSessionNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *SessionRepository) List(ctx context.Context, filter domain.ListSessionsFilter) ([]*domain.Session, error) {
	db := r.db.WithContext(ctx)
	if filter.ArtifactID != "" {
		db = db.Where("artifact_id = ?", filter.ArtifactID)
	}
	if filter.AuthorID != "" {
		db = db.Where("author_id = ?", filter.AuthorID)
	}
	for _, o := range filter.OrderBy {
		db = addOrderBy(db, o)
	}

	var models []*model.Session
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	sessions := []*domain.Session{}
	for _, m := range models {
		sessions = append(sessions, m.ToDomain())
	}
	return sessions, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return session.ErrSessionNotFound
	}

	result := r.db.WithContext(ctx).Where("id = ?", uid).Delete(&model.Session{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

// IncrementViewCount bumps the session view counter and last viewed time.
func (r *SessionRepository) IncrementViewCount(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return session.ErrSessionNotFound
	}

	return r.db.WithContext(ctx).Model(&model.Session{}).
		Where("id = ?", uid).
		Updates(map[string]interface{}{
			"view_count":     gorm.Expr("view_count + 1"),
			"last_viewed_at": time.Now(),
		}).Error
}

// BulkInsertAnnotations writes the whole batch in one transaction; either
// every event is appended or none of them are.
func (r *SessionRepository) BulkInsertAnnotations(ctx context.Context, annotations []*domain.Annotation) error {
	models := []*model.Annotation{}
	for _, a := range annotations {
		m := new(model.Annotation)
		if err := m.FromDomain(a); err != nil {
			return err
		}
		models = append(models, m)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models).Error; err != nil {
			return err
		}

		for i, m := range models {
			a, err := m.ToDomain()
			if err != nil {
				return err
			}
			*annotations[i] = *a
		}
		return nil
	})
}

func (r *SessionRepository) ListAnnotations(ctx context.Context, sessionID string) ([]*domain.Annotation, error) {
	uid, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, session.ErrSessionNotFound
	}

	var models []*model.Annotation
	err = r.db.WithContext(ctx).
		Where("session_id = ?", uid).
		Order(`t_start_ms ASC, "order" ASC`).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	annotations := []*domain.Annotation{}
	for _, m := range models {
		a, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}
	return annotations, nil
}
