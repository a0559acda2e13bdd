package lead

import "errors"

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidCategory = errors.New("invalid category")
)
