// Package identity contains the client-side capability for the external
// identity provider.
//
// The package provides:
//  1. A transport-agnostic contract (see the Provider interface): account
//     creation and password sign-in, both returning provider-issued
//     Credentials.
//  2. A concrete REST implementation (see RESTProvider) speaking the
//     Firebase-style accounts API, which maps provider error codes to
//     sentinel errors.
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrEmailTaken, ErrWeakPassword, ErrInvalidEmail,
// common.ErrorUnauthorized, common.ErrUnavailable.
package identity

import (
	"context"
	"errors"
	"time"
)

// Provider error conditions reported by the identity provider on sign-up.
var (
	ErrEmailTaken   = errors.New("email already in use")
	ErrWeakPassword = errors.New("password too weak")
	ErrInvalidEmail = errors.New("invalid email")
)

// Credentials is the provider-issued result of a successful sign-up or
// sign-in. UID is the provider's unique identifier for the account and is the
// only value the coordinator persists; the tokens are session-scoped.
type Credentials struct {
	UID          string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Provider defines the identity-provider operations used by the session
// coordinator.
//
// Contract:
//   - SignUp: create an account for email/password.
//   - SignIn: authenticate email/password against the provider.
//
// Both must honor context cancellation/timeouts. The password slice is not
// retained by implementations; the caller wipes it.
type Provider interface {
	SignUp(ctx context.Context, email string, password []byte) (*Credentials, error)
	SignIn(ctx context.Context, email string, password []byte) (*Credentials, error)
}
