package errors

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Map converts repo/infra errors into typed API errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}

	if typed := As(err); typed != nil {
		return typed
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(KindNotFound, err, "record not found")

	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(KindConflict, err, "record already exists")

	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(KindInternal, err, "request timed out")

	case errors.Is(err, context.Canceled):
		return Wrap(KindInternal, err, "request was canceled")

	default:
		return Wrap(KindInternal, err, err.Error())
	}
}

// InvalidArgument creates a Validation error for bad input.
func InvalidArgument(msg string) error {
	return New(KindValidation, msg)
}

// AlreadyExists creates a Conflict error.
func AlreadyExists(msg string) error {
	return New(KindConflict, msg)
}

// NotFound creates a NotFound error.
func NotFound(msg string) error {
	return New(KindNotFound, msg)
}
