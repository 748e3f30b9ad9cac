package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrGeneration wraps failures of the text-generation call. Callers
	// still receive an empty, usable synonym list alongside it.
	ErrGeneration = errors.New("synonym generation failed")
)
