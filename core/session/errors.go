package session

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidSessionType  = errors.New("invalid session type")
	ErrRecordingRequired   = errors.New("video session requires recording metadata")
	ErrDurationExceeded    = errors.New("recording duration exceeds the configured maximum")
	ErrSizeExceeded        = errors.New("recording size exceeds the configured maximum")
	ErrNotSessionAuthor    = errors.New("only the session author can append annotations")
	ErrDeleteForbidden     = errors.New("not allowed to delete this session")
	ErrAnnotationBatchSize = errors.New("annotation batch exceeds the maximum size")
	ErrInvalidFrame        = errors.New("annotation references a frame outside the session's artifact")
)
