package domain

import "time"

type SessionType string

const (
	SessionTypeVideo    SessionType = "VIDEO"
	SessionTypeTextOnly SessionType = "TEXT_ONLY"
)

// Recording carries the stored-object metadata of a finished video session.
type Recording struct {
	VideoURL   string `json:"video_url" yaml:"video_url"`
	MimeType   string `json:"mime_type" yaml:"mime_type"`
	Size       int64  `json:"size" yaml:"size"`
	DurationMs int64  `json:"duration_ms" yaml:"duration_ms"`
	HasCamera  bool   `json:"has_camera" yaml:"has_camera"`
}

// Session is one recorded narrated walkthrough over an artifact's frames, or a
// text-only placeholder when no video was captured.
type Session struct {
	ID           string      `json:"id" yaml:"id"`
	ArtifactID   string      `json:"artifact_id" yaml:"artifact_id"`
	AuthorID     string      `json:"author_id" yaml:"author_id"`
	Type         SessionType `json:"type" yaml:"type"`
	Recording    *Recording  `json:"recording,omitempty" yaml:"recording,omitempty"`
	ViewCount    int64       `json:"view_count" yaml:"view_count"`
	TotalWatchMs int64       `json:"total_watch_ms" yaml:"total_watch_ms"`
	LastViewedAt *time.Time  `json:"last_viewed_at,omitempty" yaml:"last_viewed_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

type ListSessionsFilter struct {
	ArtifactID string
	AuthorID   string
	OrderBy    []string
}
