package artifact

import "errors"

var (
	ErrFeedbackDisabled = errors.New("visual feedback is disabled")
	ErrPostNotFound     = errors.New("post not found")
	ErrNoImageFrames    = errors.New("post has no image attachments to review")
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrDuplicateArtifact signals that a concurrent creator won the unique
	// constraint race on post_id; callers fall back to a re-read.
	ErrDuplicateArtifact     = errors.New("artifact already exists for post")
	ErrInvalidWatchTimeDelta = errors.New("watch time delta out of range")
)
