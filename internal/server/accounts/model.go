package accounts

import "time"

// Account is a credential record held by the identity emulator. The
// password is stored only as a bcrypt hash.
type Account struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Session is the result of a successful sign-up or sign-in.
type Session struct {
	LocalID      string
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
}
