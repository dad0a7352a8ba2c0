package comment

import "errors"

var (
	ErrCommentNotFound         = errors.New("comment not found")
	ErrEmptyContent            = errors.New("comment must carry a body and/or audio")
	ErrAudioTooLong            = errors.New("audio exceeds the configured maximum duration")
	ErrInvalidRegion           = errors.New("region must be a normalized rectangle within the frame")
	ErrInvalidFrame            = errors.New("frame does not belong to the post's artifact")
	ErrInvalidSession          = errors.New("session does not belong to the post's artifact")
	ErrInvalidParent           = errors.New("parent comment does not belong to the post's artifact")
	ErrTimestampWithoutSession = errors.New("timestamp requires a session reference")
	ErrNestingTooDeep          = errors.New("replies to replies are not allowed")
	ErrStatusForbidden         = errors.New("only the post author or an admin can change comment status")
	ErrDeleteForbidden         = errors.New("not allowed to delete this comment")
	ErrInvalidStatus           = errors.New("invalid comment status")
)
