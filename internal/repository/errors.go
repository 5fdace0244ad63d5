package repository

import "errors"

// Sentinel errors returned by the repositories. Handlers translate these
// into HTTP outcomes; anything else is an internal failure.
var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)
