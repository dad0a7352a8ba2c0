package domain

import "time"

type CommentStatus string

const (
	CommentStatusOpen     CommentStatus = "OPEN"
	CommentStatusResolved CommentStatus = "RESOLVED"
)

// Region is a rectangle on a frame with every component normalized to [0,1].
type Region struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Valid reports whether the region lies within the frame.
func (r Region) Valid() bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return r.X >= 0 && r.Y >= 0 && r.X+r.Width <= 1 && r.Y+r.Height <= 1
}

// CommentAudio is an optional recorded audio clip attached to a comment.
type CommentAudio struct {
	URL         string `json:"url" yaml:"url"`
	MimeType    string `json:"mime_type" yaml:"mime_type"`
	DurationSec int    `json:"duration_sec" yaml:"duration_sec"`
}

// Comment is a feedback comment anchored to a region of one frame, optionally
// tied to a moment in a session's playback. It must carry a body and/or audio,
// never neither. Replies nest at most one level deep.
type Comment struct {
	ID           string        `json:"id" yaml:"id"`
	ArtifactID   string        `json:"artifact_id" yaml:"artifact_id"`
	FrameID      string        `json:"frame_id" yaml:"frame_id"`
	SessionID    string        `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	ParentID     string        `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	AuthorID     string        `json:"author_id" yaml:"author_id"`
	Body         string        `json:"body,omitempty" yaml:"body,omitempty"`
	Audio        *CommentAudio `json:"audio,omitempty" yaml:"audio,omitempty"`
	Region       Region        `json:"region" yaml:"region"`
	TimestampMs  *int64        `json:"timestamp_ms,omitempty" yaml:"timestamp_ms,omitempty"`
	Status       CommentStatus `json:"status" yaml:"status"`
	ResolvedAt   *time.Time    `json:"resolved_at,omitempty" yaml:"resolved_at,omitempty"`
	ResolvedByID string        `json:"resolved_by_id,omitempty" yaml:"resolved_by_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    time.Time     `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// IsReply reports whether the comment is nested under another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != ""
}

type ListCommentsFilter struct {
	ArtifactID string
	FrameID    string
	SessionID  string
	Status     CommentStatus
	OrderBy    []string
}
