package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeInvalidUsername = "invalid_username"
	ErrCodeUsernameTaken   = "username_taken"
	ErrCodeNotPermitted    = "not_permitted"
	ErrCodeNotFound        = "not_found"
	ErrCodeBadRequest      = "bad_request"
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrNotFound      = errors.New("not found")
)

// CoreError wraps a code and human-readable message. It travels to the
// acting connection inside an error event, never as a broadcast.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
