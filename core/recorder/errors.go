package recorder

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid recorder state transition")
	ErrNotRecording      = errors.New("recorder is not recording")
	ErrRecordingTooLarge = errors.New("recording too large")
)
