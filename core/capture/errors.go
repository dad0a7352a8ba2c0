package capture

import "errors"

var (
	ErrNoMicrophone   = errors.New("no usable microphone")
	ErrAlreadyStarted = errors.New("capture already started")
	ErrNotStarted     = errors.New("capture not started")
)
