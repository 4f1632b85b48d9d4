package todo

import "errors"

// Todo-related errors
var (
	// Validation errors
	ErrEmptyTitle         = errors.New("todo title cannot be empty")
	ErrTitleTooLong       = errors.New("todo title cannot exceed 255 characters")
	ErrDescriptionTooLong = errors.New("todo description cannot exceed 5000 characters")
	ErrInvalidTodoID      = errors.New("invalid todo ID")

	// ErrInvalidInput wraps a failed validation pass as a whole; the
	// field-level messages come from Validate.
	ErrInvalidInput = errors.New("todo input failed validation")
)
