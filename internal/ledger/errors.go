package ledger

import "errors"

// Field validation errors
var (
	ErrInvalidID        = errors.New("invalid transaction ID")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidType      = errors.New("type must be income or expense")
	ErrEmptyCategory    = errors.New("category is required")
	ErrInvalidDate      = errors.New("date must be an ISO 8601 calendar date")
	ErrDuplicateID      = errors.New("duplicate transaction ID")
)
