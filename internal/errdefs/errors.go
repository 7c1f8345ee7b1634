package errdefs

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotEnrolled       = errors.New("not enrolled in classroom")
	ErrInvalidState      = errors.New("invalid state for operation")
	ErrAlreadySubmitting = errors.New("submission already in progress")
	ErrNoEnrollment      = errors.New("no enrollment in progress")
)
