package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyQuery   = errors.New("query is empty")
	ErrGeneration   = errors.New("text generation failed")
	ErrItemNotFound = errors.New("item not found in order")
	ErrValidation   = errors.New("invalid input")
)
