package accounts

import "errors"

// Sign-up/sign-in failures carry the exact code that goes on the wire, so
// the HTTP layer can render them without a mapping table.
var (
	ErrEmailExists     = errors.New("EMAIL_EXISTS")
	ErrInvalidEmail    = errors.New("INVALID_EMAIL")
	ErrWeakPassword    = errors.New("WEAK_PASSWORD")
	ErrEmailNotFound   = errors.New("EMAIL_NOT_FOUND")
	ErrInvalidPassword = errors.New("INVALID_PASSWORD")
)
