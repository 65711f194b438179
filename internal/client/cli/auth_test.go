package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ykarpenko/sessionkeeper/internal/client/models"
	"github.com/ykarpenko/sessionkeeper/internal/client/session"
)

func stubInputs(t *testing.T, text string, password []byte) func() {
	t.Helper()
	origST, origGP, origPF := getSimpleText, getPassword, getProfileFields
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	getProfileFields = func(_ *bufio.Reader, _ io.Writer) (map[string]any, error) { return nil, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
		getProfileFields = origPF
	}
}

func silenceOutput(t *testing.T) func() {
	t.Helper()
	orig := printlnFn
	printlnFn = func(_ ...any) (int, error) { return 0, nil }
	return func() { printlnFn = orig }
}

type fakeCoordinator struct {
	// Register
	regForm *models.RegistrationForm
	regRet  *models.User
	regErr  error

	// Login
	loginEmail string
	loginPass  []byte
	loginRet   *session.LoginResult
	loginErr   error

	// Logout
	logoutCalled bool
	logoutErr    error

	// GetUser / CurrentUser
	getRet     *models.User
	getErr     error
	currentRet *models.User
	currentErr error
}

func (f *fakeCoordinator) Register(_ context.Context, form *models.RegistrationForm) (*models.User, error) {
	f.regForm = form
	return f.regRet, f.regErr
}

func (f *fakeCoordinator) Login(_ context.Context, email string, password []byte) (*session.LoginResult, error) {
	f.loginEmail = email
	f.loginPass = append([]byte(nil), password...)
	return f.loginRet, f.loginErr
}

func (f *fakeCoordinator) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeCoordinator) GetUser(_ context.Context, id string) (*models.User, error) {
	return f.getRet, f.getErr
}

func (f *fakeCoordinator) CurrentUser(context.Context) (*models.User, error) {
	return f.currentRet, f.currentErr
}

func (f *fakeCoordinator) SaveProfile(_ context.Context, user *models.User) (*models.User, error) {
	return user, nil
}

func TestRegister_Success(t *testing.T) {
	f := &fakeCoordinator{regRet: &models.User{ID: "uid123", Email: "alice@example.org"}}
	a := &App{coordinator: f}

	defer stubInputs(t, "alice@example.org", []byte("secret"))()
	defer silenceOutput(t)()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regForm.Email != "alice@example.org" {
		t.Fatalf("Register email mismatch: %q", f.regForm.Email)
	}
	if string(f.regForm.Password) != "secret" {
		t.Fatalf("Register password mismatch: %q", string(f.regForm.Password))
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged-in state after register")
	}
}

func TestRegister_ErrorPropagates(t *testing.T) {
	f := &fakeCoordinator{regErr: errors.New("taken")}
	a := &App{coordinator: f}

	defer stubInputs(t, "alice@example.org", []byte("secret"))()
	defer silenceOutput(t)()

	if err := a.Register(context.Background()); err == nil {
		t.Fatalf("want error from Register")
	}
	if a.isLoggedIn() {
		t.Fatalf("must not be logged in after failed register")
	}
}

func TestLogin_Found(t *testing.T) {
	f := &fakeCoordinator{loginRet: &session.LoginResult{
		Status: session.StatusFound,
		User:   &models.User{ID: "u1", Email: "alice@example.org", Username: "alice"},
	}}
	a := &App{coordinator: f}

	defer stubInputs(t, "alice@example.org", []byte("pw"))()
	defer silenceOutput(t)()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "alice@example.org" {
		t.Fatalf("Login email mismatch: %q", f.loginEmail)
	}
	if a.userEmail != "alice@example.org" {
		t.Fatalf("userEmail not set: %q", a.userEmail)
	}
}

func TestLogin_NotFound_NoSessionChange(t *testing.T) {
	f := &fakeCoordinator{loginRet: &session.LoginResult{Status: session.StatusNotFound}}
	a := &App{coordinator: f}

	defer stubInputs(t, "nobody@example.org", []byte("pw"))()
	defer silenceOutput(t)()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("must not be logged in when no profile was found")
	}
}

func TestLogout(t *testing.T) {
	f := &fakeCoordinator{}
	a := &App{coordinator: f, userEmail: "alice@example.org"}

	defer silenceOutput(t)()

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("coordinator Logout not called")
	}
	if a.isLoggedIn() {
		t.Fatalf("userEmail not cleared")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeCoordinator{logoutErr: errors.New("storage-fail")}
	a := &App{coordinator: f, userEmail: "alice@example.org"}

	defer silenceOutput(t)()

	if err := a.Logout(context.Background()); err == nil {
		t.Fatalf("want error from Logout")
	}
}
