package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_MarshalFlattensProfile(t *testing.T) {
	u := &User{
		ID:       "uid123",
		Email:    "a@x.com",
		Username: "A",
		Profile:  map[string]any{"age": 30, "city": "Riga"},
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"uid123","email":"a@x.com","username":"A","age":30,"city":"Riga"}`, string(b))
}

func TestUser_MarshalOmitsEmptyID(t *testing.T) {
	u := &User{Email: "a@x.com", Username: "A"}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(b, &obj))
	require.NotContains(t, obj, "id")
}

func TestUser_MarshalRejectsShadowingProfileKey(t *testing.T) {
	u := &User{
		ID:      "u1",
		Email:   "a@x.com",
		Profile: map[string]any{"email": "evil@x.com"},
	}

	_, err := json.Marshal(u)
	require.Error(t, err)
}

func TestUser_UnmarshalSplitsProfile(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"u1","email":"a@x.com","username":"A","age":30}`), &u)
	require.NoError(t, err)

	require.Equal(t, "u1", u.ID)
	require.Equal(t, "a@x.com", u.Email)
	require.Equal(t, "A", u.Username)
	require.Equal(t, map[string]any{"age": float64(30)}, u.Profile)
}

func TestUser_UnmarshalWithoutExtraFields(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"u1","email":"a@x.com","username":"A"}`), &u)
	require.NoError(t, err)
	require.Nil(t, u.Profile)
}

func TestUser_JSONRoundTrip(t *testing.T) {
	orig := &User{
		ID:       "uid123",
		Email:    "a@x.com",
		Username: "A",
		Profile:  map[string]any{"age": float64(30), "tags": []any{"x", "y"}},
	}

	b, err := json.Marshal(orig)
	require.NoError(t, err)

	var back User
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, orig, &back)
}
