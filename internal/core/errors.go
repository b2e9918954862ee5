package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeAuthRequired = "auth_required"
	ErrCodeBadPassword  = "bad_password"
)

// User-facing denial messages carried in AUTH_FAILED payloads.
const (
	MsgAuthRequired = "this action requires authentication"
	MsgBadPassword  = "incorrect password"
	MsgAuthSuccess  = "authentication successful"
)

// ErrEmptyName rejects an ADD_PERSON with a blank name.
var ErrEmptyName = errors.New("name must not be empty")

// CoreError wraps a code and a human-readable message.
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
