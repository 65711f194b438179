package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ykarpenko/sessionkeeper/internal/common"
)

const (
	signUpPath = "/v1/accounts:signUp"
	signInPath = "/v1/accounts:signInWithPassword"
)

// RESTProvider talks to a Firebase-style identity REST API.
type RESTProvider struct {
	endpoint string
	client   *http.Client
}

// NewRESTProvider constructs a provider client for the given endpoint base
// URL (no trailing slash). Timeout bounds each request; zero means no limit.
func NewRESTProvider(endpoint string, timeout time.Duration) *RESTProvider {
	return &RESTProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type credentialsResponse struct {
	LocalID      string `json:"localId"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *RESTProvider) SignUp(ctx context.Context, email string, password []byte) (*Credentials, error) {
	return p.post(ctx, signUpPath, email, password)
}

func (p *RESTProvider) SignIn(ctx context.Context, email string, password []byte) (*Credentials, error) {
	return p.post(ctx, signInPath, email, password)
}

func (p *RESTProvider) post(ctx context.Context, path, email string, password []byte) (*Credentials, error) {
	body, err := json.Marshal(credentialsRequest{
		Email:             email,
		Password:          string(password),
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, p.mapError(resp)
	}

	var cr credentialsResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	creds := &Credentials{
		UID:          cr.LocalID,
		IDToken:      cr.IDToken,
		RefreshToken: cr.RefreshToken,
		ExpiresAt:    tokenExpiry(cr.IDToken),
	}
	return creds, nil
}

// tokenExpiry extracts the expiry claim from the idToken without verifying
// the signature; the client has no signing key and only needs the deadline.
// A token that cannot be parsed yields a zero time.
func tokenExpiry(idToken string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// mapError converts a provider error body to a sentinel error. Unknown codes
// are surfaced verbatim.
func (p *RESTProvider) mapError(resp *http.Response) error {
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return fmt.Errorf("identity provider: unexpected status %d", resp.StatusCode)
	}

	switch er.Error.Message {
	case "EMAIL_EXISTS":
		return ErrEmailTaken
	case "WEAK_PASSWORD":
		return ErrWeakPassword
	case "INVALID_EMAIL":
		return ErrInvalidEmail
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD":
		return common.ErrorUnauthorized
	default:
		return fmt.Errorf("identity provider: %s (status %d)", er.Error.Message, resp.StatusCode)
	}
}
