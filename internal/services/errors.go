package services

import "errors"

// Error kinds surfaced to handlers. Wrap with fmt.Errorf("%w: ...") to add
// context; handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound   = errors.New("not_found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation_failed")
)
