package services

import "errors"

// Domain errors surfaced to controllers, which map them to HTTP statuses.
var (
	ErrPinNotFound     = errors.New("pin not found")
	ErrTagNotFound     = errors.New("tag not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("friend request not found")
	ErrNotAuthorized   = errors.New("not authorized")

	ErrTagAlreadyOnPin   = errors.New("tag already on this pin")
	ErrTagNotOnPin       = errors.New("tag not found on this pin")
	ErrDefaultTag        = errors.New("cannot delete default tags")
	ErrEmailInUse        = errors.New("email already in use")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrSelfRequest       = errors.New("cannot send a friend request to yourself")
	ErrRequestNotPending = errors.New("friend request already responded to")
)

// ValidationError marks malformed input rejected before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(message string) error {
	return &ValidationError{Message: message}
}
