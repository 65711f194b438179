// Package session contains the session coordinator: the application service
// that orchestrates register/login/logout between the identity provider and
// the profile store, mirroring the active user record into local storage.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ykarpenko/sessionkeeper/internal/client/identity"
	"github.com/ykarpenko/sessionkeeper/internal/client/localstore"
	"github.com/ykarpenko/sessionkeeper/internal/client/models"
	"github.com/ykarpenko/sessionkeeper/internal/client/profile"
	"github.com/ykarpenko/sessionkeeper/internal/common"
)

// SessionKey is the local-storage key holding the active user record.
const SessionKey = "user"

// MatchPolicy picks the record to use when an email query returns more than
// one match. The policy is an explicit parameter of the coordinator so the
// tie-break is documented behavior, not an incidental array index.
type MatchPolicy func(users []*models.User) *models.User

// FirstMatch selects the first record in store-returned order.
func FirstMatch(users []*models.User) *models.User {
	return users[0]
}

// LoginStatus tags the outcome of a Login call. Presentation (alerts,
// prompts) is left to the caller.
type LoginStatus string

const (
	StatusFound    LoginStatus = "found"
	StatusNotFound LoginStatus = "not_found"
)

// LoginResult is the tagged outcome of Login. User is set only when Status
// is StatusFound.
type LoginResult struct {
	Status LoginStatus
	User   *models.User
}

// Coordinator defines the register/login/logout operations for the CLI.
//
// Contract:
//   - Register: create a provider account, persist the profile, mirror it locally.
//   - Login: authenticate against the provider, look up the profile by email,
//     mirror it locally; absence of a profile is a tagged result, not an error.
//   - Logout: drop the local mirror. No network interaction.
//   - GetUser: fetch a profile-store record by provider-issued id.
//   - CurrentUser: read the locally mirrored record; common.ErrNoSession when empty.
//   - SaveProfile: persist a record to the profile store and mirror the stored version.
//
// All methods must honor context cancellation/timeouts.
type Coordinator interface {
	Register(ctx context.Context, form *models.RegistrationForm) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*LoginResult, error)
	Logout(ctx context.Context) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	SaveProfile(ctx context.Context, user *models.User) (*models.User, error)
}

// coordinator is the concrete Coordinator backed by an identity Provider, a
// profile Store, and a local key-value Store.
type coordinator struct {
	provider identity.Provider
	profiles profile.Store
	local    localstore.Store
	policy   MatchPolicy
}

// NewCoordinator constructs a Coordinator from injected capabilities. A nil
// policy defaults to FirstMatch.
func NewCoordinator(provider identity.Provider, profiles profile.Store, local localstore.Store, policy MatchPolicy) Coordinator {
	if policy == nil {
		policy = FirstMatch
	}
	return &coordinator{provider: provider, profiles: profiles, local: local, policy: policy}
}

// Register creates an account with the identity provider, builds the user
// record around the provider-issued identifier, and persists it via
// SaveProfile. The form's password goes only to the provider; it never
// appears on the resulting record.
//
// If the profile-store create fails after the provider account was created,
// the account is left as-is: there is no compensating delete, and no local
// mirror is written.
func (c *coordinator) Register(ctx context.Context, form *models.RegistrationForm) (*models.User, error) {
	creds, err := c.provider.SignUp(ctx, form.Email, form.Password)
	if err != nil {
		return nil, fmt.Errorf("identity sign-up: %w", err)
	}

	user := &models.User{
		ID:       creds.UID,
		Email:    form.Email,
		Username: form.Username,
		Profile:  form.Profile,
	}

	return c.SaveProfile(ctx, user)
}

// Login authenticates email/password against the identity provider, then
// looks up the profile-store record for that email. Zero matches yield
// LoginResult{Status: StatusNotFound} with a nil error and no local write;
// otherwise the match policy picks the record to mirror locally.
func (c *coordinator) Login(ctx context.Context, email string, password []byte) (*LoginResult, error) {
	if _, err := c.provider.SignIn(ctx, email, password); err != nil {
		return nil, fmt.Errorf("identity sign-in: %w", err)
	}

	matches, err := c.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("profile lookup: %w", err)
	}

	if len(matches) == 0 {
		return &LoginResult{Status: StatusNotFound}, nil
	}

	user := c.policy(matches)
	if err := c.mirror(ctx, user); err != nil {
		return nil, err
	}

	return &LoginResult{Status: StatusFound, User: user}, nil
}

// Logout removes the active user record from local storage.
func (c *coordinator) Logout(ctx context.Context) error {
	return c.local.Delete(ctx, SessionKey)
}

// GetUser fetches a record from the profile store by provider-issued id.
func (c *coordinator) GetUser(ctx context.Context, id string) (*models.User, error) {
	return c.profiles.GetByID(ctx, id)
}

// CurrentUser reads and decodes the mirrored record. An empty slot returns
// common.ErrNoSession.
func (c *coordinator) CurrentUser(ctx context.Context) (*models.User, error) {
	data, err := c.local.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if data == nil {
		return nil, common.ErrNoSession
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return user, nil
}

// SaveProfile creates the record in the profile store and mirrors the
// store's response (store-assigned fields included) into local storage.
func (c *coordinator) SaveProfile(ctx context.Context, user *models.User) (*models.User, error) {
	stored, err := c.profiles.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("profile create: %w", err)
	}

	if err := c.mirror(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (c *coordinator) mirror(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := c.local.Set(ctx, SessionKey, data); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
