package domain

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// statuses; anything else surfaces as a 500.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicatePhone = errors.New("phone number already registered")
	ErrUnauthorized   = errors.New("invalid phone or password")
)
