package model

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/goto/spotlight/domain"
	"gorm.io/datatypes"
)

// Annotation database model
type Annotation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SessionID uuid.UUID `gorm:"type:uuid"`
	FrameID   uuid.NullUUID
	Tool      string
	TStartMs  int64
	TEndMs    sql.NullInt64
	Order     int `gorm:"column:order"`
	Payload   datatypes.JSON

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Annotation) TableName() string {
	return "annotations"
}

func (m *Annotation) FromDomain(a *domain.Annotation) error {
	if a.ID != "" {
		id, err := uuid.Parse(a.ID)
		if err != nil {
			return err
		}
		m.ID = id
	}
	if a.SessionID != "" {
		id, err := uuid.Parse(a.SessionID)
		if err != nil {
			return err
		}
		m.SessionID = id
	}
	if a.FrameID != "" {
		id, err := uuid.Parse(a.FrameID)
		if err != nil {
			return err
		}
		m.FrameID = uuid.NullUUID{UUID: id, Valid: true}
	}

	m.Tool = string(a.Tool)
	m.TStartMs = a.TStartMs
	if a.TEndMs != nil {
		m.TEndMs = sql.NullInt64{Int64: *a.TEndMs, Valid: true}
	}
	m.Order = a.Order

	if a.Payload != nil {
		payload, err := json.Marshal(a.Payload)
		if err != nil {
			return err
		}
		m.Payload = datatypes.JSON(payload)
	}

	return nil
}

func (m *Annotation) ToDomain() (*domain.Annotation, error) {
	a := &domain.Annotation{
		ID:        m.ID.String(),
		SessionID: m.SessionID.String(),
		Tool:      domain.AnnotationTool(m.Tool),
		TStartMs:  m.TStartMs,
		Order:     m.Order,
	}
	if m.FrameID.Valid {
		a.FrameID = m.FrameID.UUID.String()
	}
	if m.TEndMs.Valid {
		tEnd := m.TEndMs.Int64
		a.TEndMs = &tEnd
	}
	if m.Payload != nil {
		if err := json.Unmarshal(m.Payload, &a.Payload); err != nil {
			return nil, err
		}
	}
	return a, nil
}
