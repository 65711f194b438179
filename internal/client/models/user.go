// Package models defines the client-side data model for sessionkeeper.
package models

import (
	"encoding/json"
	"fmt"
)

// Reserved top-level keys of the wire representation. Profile fields with
// these names would shadow the typed fields and are rejected on marshal.
const (
	keyID       = "id"
	keyEmail    = "email"
	keyUsername = "username"
)

// User is a profile-store record. ID is always issued by the identity
// provider, never generated on the client. Arbitrary profile fields live in
// Profile and are flattened into the same JSON object on the wire, so
//
//	User{ID: "u1", Email: "a@x.com", Profile: map[string]any{"age": 30}}
//
// serializes as {"id":"u1","email":"a@x.com","username":"","age":30}.
//
// There is no password field on User by design: registration input travels in
// a RegistrationForm and the password goes only to the identity provider.
type User struct {
	ID       string
	Email    string
	Username string
	Profile  map[string]any
}

// RegistrationForm is the draft record collected from user input. Password is
// transient: it is handed to the identity provider and wiped by the caller,
// and never becomes part of a persisted User.
type RegistrationForm struct {
	Email    string
	Username string
	Password []byte
	Profile  map[string]any
}

func (u *User) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(u.Profile)+3)

	for k, v := range u.Profile {
		switch k {
		case keyID, keyEmail, keyUsername:
			return nil, fmt.Errorf("profile field %q shadows a reserved key", k)
		}
		obj[k] = v
	}

	// The profile store assigns an id when none is sent; omit the key so an
	// empty string is never mistaken for a client-issued identifier.
	if u.ID != "" {
		obj[keyID] = u.ID
	}
	obj[keyEmail] = u.Email
	obj[keyUsername] = u.Username

	return json.Marshal(obj)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	u.ID = popString(obj, keyID)
	u.Email = popString(obj, keyEmail)
	u.Username = popString(obj, keyUsername)

	if len(obj) == 0 {
		u.Profile = nil
		return nil
	}
	u.Profile = obj
	return nil
}

// popString removes key from obj and returns its value when it is a string.
// Non-string values for reserved keys are dropped rather than failing the
// whole record.
func popString(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok {
		return ""
	}
	delete(obj, key)
	s, _ := v.(string)
	return s
}
