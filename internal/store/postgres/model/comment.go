package model

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/goto/spotlight/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Comment database model
type Comment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ArtifactID   uuid.UUID `gorm:"type:uuid"`
	FrameID      uuid.UUID `gorm:"type:uuid"`
	SessionID    uuid.NullUUID
	ParentID     uuid.NullUUID
	AuthorID     string
	Body         sql.NullString
	Audio        datatypes.JSON
	RegionX      float64
	RegionY      float64
	RegionWidth  float64
	RegionHeight float64
	TimestampMs  sql.NullInt64
	Status       string
	ResolvedAt   *time.Time
	ResolvedByID sql.NullString

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) FromDomain(c *domain.Comment) error {
	if c.ID != "" {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return err
		}
		m.ID = id
	}
	if c.ArtifactID != "" {
		id, err := uuid.Parse(c.ArtifactID)
		if err != nil {
			return err
		}
		m.ArtifactID = id
	}
	if c.FrameID != "" {
		id, err := uuid.Parse(c.FrameID)
		if err != nil {
			return err
		}
		m.FrameID = id
	}
	if c.SessionID != "" {
		id, err := uuid.Parse(c.SessionID)
		if err != nil {
			return err
		}
		m.SessionID = uuid.NullUUID{UUID: id, Valid: true}
	}
	if c.ParentID != "" {
		id, err := uuid.Parse(c.ParentID)
		if err != nil {
			return err
		}
		m.ParentID = uuid.NullUUID{UUID: id, Valid: true}
	}

	m.AuthorID = c.AuthorID
	if c.Body != "" {
		m.Body = sql.NullString{String: c.Body, Valid: true}
	}
	if c.Audio != nil {
		audio, err := json.Marshal(c.Audio)
		if err != nil {
			return err
		}
		m.Audio = datatypes.JSON(audio)
	}
	m.RegionX = c.Region.X
	m.RegionY = c.Region.Y
	m.RegionWidth = c.Region.Width
	m.RegionHeight = c.Region.Height
	if c.TimestampMs != nil {
		m.TimestampMs = sql.NullInt64{Int64: *c.TimestampMs, Valid: true}
	}
	m.Status = string(c.Status)
	m.ResolvedAt = c.ResolvedAt
	if c.ResolvedByID != "" {
		m.ResolvedByID = sql.NullString{String: c.ResolvedByID, Valid: true}
	}
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt

	return nil
}

func (m *Comment) ToDomain() (*domain.Comment, error) {
	c := &domain.Comment{
		ID:         m.ID.String(),
		ArtifactID: m.ArtifactID.String(),
		FrameID:    m.FrameID.String(),
		AuthorID:   m.AuthorID,
		Body:       m.Body.String,
		Region: domain.Region{
			X:      m.RegionX,
			Y:      m.RegionY,
			Width:  m.RegionWidth,
			Height: m.RegionHeight,
		},
		Status:       domain.CommentStatus(m.Status),
		ResolvedAt:   m.ResolvedAt,
		ResolvedByID: m.ResolvedByID.String,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.SessionID.Valid {
		c.SessionID = m.SessionID.UUID.String()
	}
	if m.ParentID.Valid {
		c.ParentID = m.ParentID.UUID.String()
	}
	if m.Audio != nil {
		var audio domain.CommentAudio
		if err := json.Unmarshal(m.Audio, &audio); err != nil {
			return nil, err
		}
		c.Audio = &audio
	}
	if m.TimestampMs.Valid {
		ts := m.TimestampMs.Int64
		c.TimestampMs = &ts
	}
	return c, nil
}
