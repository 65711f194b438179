package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ykarpenko/sessionkeeper/internal/common"
	"github.com/ykarpenko/sessionkeeper/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// SignUp creates a new account and returns a fresh session for it.
func (s *Service) SignUp(ctx context.Context, email string, password []byte) (*Session, error) {

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrEmailExists
		}
		return nil, common.ErrorInternal
	}

	return s.newSession(account)
}

// SignIn verifies the password for an existing account and returns a
// session. A missing account and a wrong password fail with distinct
// codes, matching the emulated provider.
func (s *Service) SignIn(ctx context.Context, email string, password []byte) (*Session, error) {

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidPassword
	}

	return s.newSession(account)
}

func (s *Service) newSession(account *Account) (*Session, error) {

	idToken, err := GenerateToken(account.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{
		LocalID:      account.ID,
		IDToken:      idToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.tokenValidityDuration,
	}, nil
}
