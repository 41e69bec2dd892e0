package service

import "errors"

// Sentinel errors shared by the services. Handlers map these onto HTTP
// statuses; anything else is a store failure and fatal for the request.
var (
	ErrUserExists      = errors.New("user already exists")
	ErrUnknownUser     = errors.New("incorrect username")
	ErrBadPassword     = errors.New("incorrect password")
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyComment    = errors.New("cannot post empty comment")
	ErrPostNotFound    = errors.New("post does not exist")
	ErrCommentNotFound = errors.New("comment does not exist")
	ErrProfileNotFound = errors.New("profile does not exist")
	ErrForbidden       = errors.New("forbidden")
	ErrBadUpload       = errors.New("unsupported photo file")
)
