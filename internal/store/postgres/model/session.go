package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/goto/spotlight/domain"
	"gorm.io/gorm"
)

// Session database model
type Session struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ArtifactID   uuid.UUID `gorm:"type:uuid"`
	AuthorID     string
	Type         string
	VideoURL     sql.NullString
	MimeType     sql.NullString
	Size         sql.NullInt64
	DurationMs   sql.NullInt64
	HasCamera    bool
	ViewCount    int64
	TotalWatchMs int64
	LastViewedAt *time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Session) TableName() string {
	return "sessions"
}

func (m *Session) FromDomain(s *domain.Session) error {
	if s.ID != "" {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return err
		}
		m.ID = id
	}
	if s.ArtifactID != "" {
		id, err := uuid.Parse(s.ArtifactID)
		if err != nil {
			return err
		}
		m.ArtifactID = id
	}

	m.AuthorID = s.AuthorID
	m.Type = string(s.Type)
	if s.Recording != nil {
		m.VideoURL = sql.NullString{String: s.Recording.VideoURL, Valid: true}
		m.MimeType = sql.NullString{String: s.Recording.MimeType, Valid: true}
		m.Size = sql.NullInt64{Int64: s.Recording.Size, Valid: true}
		m.DurationMs = sql.NullInt64{Int64: s.Recording.DurationMs, Valid: true}
		m.HasCamera = s.Recording.HasCamera
	}
	m.ViewCount = s.ViewCount
	m.TotalWatchMs = s.TotalWatchMs
	m.LastViewedAt = s.LastViewedAt
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt

	return nil
}

func (m *Session) ToDomain() *domain.Session {
	s := &domain.Session{
		ID:           m.ID.String(),
		ArtifactID:   m.ArtifactID.String(),
		AuthorID:     m.AuthorID,
		Type:         domain.SessionType(m.Type),
		ViewCount:    m.ViewCount,
		TotalWatchMs: m.TotalWatchMs,
		LastViewedAt: m.LastViewedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.VideoURL.Valid {
		s.Recording = &domain.Recording{
			VideoURL:   m.VideoURL.String,
			MimeType:   m.MimeType.String,
			Size:       m.Size.Int64,
			DurationMs: m.DurationMs.Int64,
			HasCamera:  m.HasCamera,
		}
	}
	return s
}
