package upload

import "errors"

var (
	ErrEmptyBlob    = errors.New("nothing to upload")
	ErrUploadFailed = errors.New("upload failed")
)
