package playback

import "errors"

var (
	ErrNoRecording   = errors.New("session has no video recording")
	ErrAlreadyClosed = errors.New("playback already closed")
)
