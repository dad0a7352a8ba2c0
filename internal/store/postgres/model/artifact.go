package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/goto/spotlight/domain"
)

// Artifact database model
type Artifact struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PostID         string    `gorm:"uniqueIndex"`
	CreatedByID    string
	FrameSignature string
	ViewCount      int64
	TotalWatchMs   int64
	LastViewedAt   *time.Time

	Frames []*Frame

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Artifact) TableName() string {
	return "artifacts"
}

// Frame database model
type Frame struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ArtifactID   uuid.UUID `gorm:"type:uuid"`
	AttachmentID string
	URL          string
	ThumbnailURL string
	Width        int
	Height       int
	Order        int       `gorm:"column:order"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Frame) TableName() string {
	return "frames"
}

func (m *Artifact) FromDomain(a *domain.Artifact) error {
	if a.ID != "" {
		id, err := uuid.Parse(a.ID)
		if err != nil {
			return err
		}
		m.ID = id
	}

	m.PostID = a.PostID
	m.CreatedByID = a.CreatedByID
	m.FrameSignature = a.FrameSignature
	m.ViewCount = a.ViewCount
	m.TotalWatchMs = a.TotalWatchMs
	m.LastViewedAt = a.LastViewedAt
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt

	m.Frames = nil
	for _, f := range a.Frames {
		frame := new(Frame)
		if err := frame.FromDomain(f); err != nil {
			return err
		}
		m.Frames = append(m.Frames, frame)
	}

	return nil
}

func (m *Artifact) ToDomain() *domain.Artifact {
	a := &domain.Artifact{
		ID:             m.ID.String(),
		PostID:         m.PostID,
		CreatedByID:    m.CreatedByID,
		FrameSignature: m.FrameSignature,
		ViewCount:      m.ViewCount,
		TotalWatchMs:   m.TotalWatchMs,
		LastViewedAt:   m.LastViewedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for _, f := range m.Frames {
		a.Frames = append(a.Frames, f.ToDomain())
	}
	return a
}

func (m *Frame) FromDomain(f *domain.Frame) error {
	if f.ID != "" {
		id, err := uuid.Parse(f.ID)
		if err != nil {
			return err
		}
		m.ID = id
	}
	if f.ArtifactID != "" {
		id, err := uuid.Parse(f.ArtifactID)
		if err != nil {
			return err
		}
		m.ArtifactID = id
	}

	m.AttachmentID = f.AttachmentID
	m.URL = f.URL
	m.ThumbnailURL = f.ThumbnailURL
	m.Width = f.Width
	m.Height = f.Height
	m.Order = f.Order
	m.CreatedAt = f.CreatedAt

	return nil
}

func (m *Frame) ToDomain() *domain.Frame {
	return &domain.Frame{
		ID:           m.ID.String(),
		ArtifactID:   m.ArtifactID.String(),
		AttachmentID: m.AttachmentID,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		Width:        m.Width,
		Height:       m.Height,
		Order:        m.Order,
		CreatedAt:    m.CreatedAt,
	}
}
