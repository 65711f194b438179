package cli

import (
	"context"
	"errors"
	"os"

	"github.com/ykarpenko/sessionkeeper/internal/client/models"
	"github.com/ykarpenko/sessionkeeper/internal/client/session"
	"github.com/ykarpenko/sessionkeeper/internal/common"
)

// getSimpleText, getPassword and getProfileFields are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getProfileFields = GetProfileFields

// Register prompts the user for an email, username, password and optional
// profile fields, and attempts to create a new account via the coordinator.
//
// On success it prints the provider-issued id and returns nil. The password
// byte slice is securely wiped before returning. Any I/O or service error is
// returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fields, err := getProfileFields(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	form := &models.RegistrationForm{
		Email:    email,
		Username: username,
		Password: password,
		Profile:  fields,
	}

	user, err := a.coordinator.Register(ctx, form)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	a.userEmail = user.Email
	printlnFn("Success! Registered with id", user.ID)
	return nil
}

// Login prompts the user for credentials and tries to authenticate. A
// missing profile record is reported to the user here, in the presentation
// layer; the coordinator only returns the tagged result.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.coordinator.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Invalid email or password")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	if res.Status == session.StatusNotFound {
		printlnFn("No profile found for", email)
		return nil
	}

	a.userEmail = res.User.Email
	printlnFn("Welcome,", res.User.Username)
	return nil
}

// Logout removes the mirrored user record from local storage.
func (a *App) Logout(ctx context.Context) error {
	if err := a.coordinator.Logout(ctx); err != nil {
		return err
	}
	a.userEmail = ""
	printlnFn("Logged out")
	return nil
}
