package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/ykarpenko/sessionkeeper/internal/common"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func providerStub(t *testing.T, status int, body any) (*RESTProvider, *http.Request) {
	t.Helper()
	var captured http.Request

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(ts.Close)

	return NewRESTProvider(ts.URL, time.Second), &captured
}

func TestSignUp_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	idToken := signedToken(t, exp)

	p, captured := providerStub(t, http.StatusOK, map[string]string{
		"localId":      "uid123",
		"idToken":      idToken,
		"refreshToken": "rt1",
	})

	creds, err := p.SignUp(context.Background(), "a@x.com", []byte("secret1"))
	require.NoError(t, err)

	require.Equal(t, "/v1/accounts:signUp", captured.URL.Path)
	require.Equal(t, "uid123", creds.UID)
	require.Equal(t, idToken, creds.IDToken)
	require.Equal(t, "rt1", creds.RefreshToken)
	require.Equal(t, exp.Unix(), creds.ExpiresAt.Unix())
}

func TestSignIn_UsesSignInPath(t *testing.T) {
	p, captured := providerStub(t, http.StatusOK, map[string]string{"localId": "u1"})

	_, err := p.SignIn(context.Background(), "a@x.com", []byte("secret1"))
	require.NoError(t, err)
	require.Equal(t, "/v1/accounts:signInWithPassword", captured.URL.Path)
}

func TestSignUp_ErrorMapping(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"EMAIL_EXISTS", ErrEmailTaken},
		{"WEAK_PASSWORD", ErrWeakPassword},
		{"INVALID_EMAIL", ErrInvalidEmail},
		{"EMAIL_NOT_FOUND", common.ErrorUnauthorized},
		{"INVALID_PASSWORD", common.ErrorUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			p, _ := providerStub(t, http.StatusBadRequest, map[string]any{
				"error": map[string]any{"code": 400, "message": tc.code},
			})

			_, err := p.SignUp(context.Background(), "a@x.com", []byte("p"))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSignUp_UnknownErrorCodeSurfaced(t *testing.T) {
	p, _ := providerStub(t, http.StatusBadRequest, map[string]any{
		"error": map[string]any{"code": 400, "message": "OPERATION_NOT_ALLOWED"},
	})

	_, err := p.SignUp(context.Background(), "a@x.com", []byte("p"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "OPERATION_NOT_ALLOWED")
}

func TestSignUp_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // force connection refused

	p := NewRESTProvider(ts.URL, time.Second)
	_, err := p.SignUp(context.Background(), "a@x.com", []byte("p"))
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestTokenExpiry_UnparseableTokenIsZero(t *testing.T) {
	require.True(t, tokenExpiry("garbage").IsZero())
	require.True(t, tokenExpiry("").IsZero())
}
