package repository

import "errors"

var (
	// ErrNotFound means the referenced item or cart is absent or soft-deleted.
	ErrNotFound = errors.New("not found")
	// ErrValidation means the input shape is malformed or disallowed.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means a concurrent writer won a race; the operation was not
	// applied and may be retried.
	ErrConflict = errors.New("concurrent update conflict")
)
