package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/goto/spotlight/core/comment"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/internal/store/postgres/model"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := &model.Comment{}
	if err := m.FromDomain(c); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		newComment, err := m.ToDomain()
		if err != nil {
			return err
		}
		*c = *newComment
		return nil
	})
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, comment.ErrCommentNotFound
	}

	m := &model.Comment{}
	if err := r.db.WithContext(ctx).Where("id = ?", uid).Take(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, err
	}
	return m.ToDomain()
}

func (r *CommentRepository) List(ctx context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	db := r.db.WithContext(ctx)
	if filter.ArtifactID != "" {
		db = db.Where("artifact_id = ?", filter.ArtifactID)
	}
	if filter.FrameID != "" {
		db = db.Where("frame_id = ?", filter.FrameID)
	}
	if filter.SessionID != "" {
		db = db.Where("session_id = ?", filter.SessionID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}
	for _, o := range filter.OrderBy {
		db = addOrderBy(db, o)
	}

	var models []*model.Comment
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	comments := []*domain.Comment{}
	for _, m := range models {
		c, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// UpdateStatus persists a status change along with the resolution stamp.
func (r *CommentRepository) UpdateStatus(ctx context.Context, c *domain.Comment) error {
	uid, err := uuid.Parse(c.ID)
	if err != nil {
		return comment.ErrCommentNotFound
	}

	updates := map[string]interface{}{
		"status":         string(c.Status),
		"resolved_at":    c.ResolvedAt,
		"resolved_by_id": nil,
	}
	if c.ResolvedByID != "" {
		updates["resolved_by_id"] = c.ResolvedByID
	}

	result := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", uid).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

// Delete soft-deletes the comment and its direct replies in one transaction.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return comment.ErrCommentNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", uid).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", uid).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return comment.ErrCommentNotFound
		}
		return nil
	})
}
