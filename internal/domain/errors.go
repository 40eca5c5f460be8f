package domain

import "errors"

var (
	// ErrInvalidOperation marks input rejected before anything is buffered.
	ErrInvalidOperation = errors.New("invalid engagement operation")
	ErrNotFound         = errors.New("not found")
	ErrCommentNotOnPost = errors.New("comment does not belong to post")
	ErrNotCommentAuthor = errors.New("comment written by another user")
	ErrInvalidRequest   = errors.New("invalid request")
)
