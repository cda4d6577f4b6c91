package store

import "errors"

// Domain errors returned by task mutations. Tool handlers translate these
// into user-visible results instead of infrastructure failures.
var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
)
