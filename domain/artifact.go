package domain

import "time"

// Artifact is the per-post container for all visual feedback state. There is
// exactly one artifact per post, created lazily on the first feedback action.
type Artifact struct {
	ID             string     `json:"id" yaml:"id"`
	PostID         string     `json:"post_id" yaml:"post_id"`
	CreatedByID    string     `json:"created_by_id" yaml:"created_by_id"`
	FrameSignature string     `json:"frame_signature" yaml:"frame_signature"`
	ViewCount      int64      `json:"view_count" yaml:"view_count"`
	TotalWatchMs   int64      `json:"total_watch_ms" yaml:"total_watch_ms"`
	LastViewedAt   *time.Time `json:"last_viewed_at,omitempty" yaml:"last_viewed_at,omitempty"`
	Frames         []*Frame   `json:"frames,omitempty" yaml:"frames,omitempty"`
	CreatedAt      time.Time  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Frame is an immutable snapshot of one image attachment taken at artifact
// creation time. The artifact's frame set does not follow later edits to the
// post's attachments.
type Frame struct {
	ID           string    `json:"id" yaml:"id"`
	ArtifactID   string    `json:"artifact_id" yaml:"artifact_id"`
	AttachmentID string    `json:"attachment_id" yaml:"attachment_id"`
	URL          string    `json:"url" yaml:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	Width        int       `json:"width,omitempty" yaml:"width,omitempty"`
	Height       int       `json:"height,omitempty" yaml:"height,omitempty"`
	Order        int       `json:"order" yaml:"order"`
	CreatedAt    time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// FirstFrame returns the frame with the lowest order, or nil if the artifact
// has no frames loaded.
func (a *Artifact) FirstFrame() *Frame {
	var first *Frame
	for _, f := range a.Frames {
		if first == nil || f.Order < first.Order {
			first = f
		}
	}
	return first
}

// FrameByID returns the frame with the given id, or nil if it does not belong
// to this artifact.
func (a *Artifact) FrameByID(id string) *Frame {
	for _, f := range a.Frames {
		if f.ID == id {
			return f
		}
	}
	return nil
}
