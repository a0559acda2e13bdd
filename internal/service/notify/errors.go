package notify

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields: name, email, and topic are required")
	ErrInvalidEmail  = errors.New("invalid email address format")
)
