package httpapi

import (
	"github.com/ykarpenko/sessionkeeper/internal/server/profiles"
)

// Reserved top-level keys of the profile wire representation. Everything
// else in the flat object is an extra profile field.
const (
	keyID       = "id"
	keyEmail    = "email"
	keyUsername = "username"
)

// profileFromWire splits a flat JSON object into the typed columns and the
// extra fields map.
func profileFromWire(obj map[string]any) *profiles.Profile {
	p := &profiles.Profile{
		ID:       popString(obj, keyID),
		Email:    popString(obj, keyEmail),
		Username: popString(obj, keyUsername),
	}
	if len(obj) > 0 {
		p.Fields = obj
	}
	if p.Fields == nil {
		p.Fields = map[string]any{}
	}
	return p
}

// profileToWire flattens a stored profile back into a single JSON object.
func profileToWire(p *profiles.Profile) map[string]any {
	obj := make(map[string]any, len(p.Fields)+3)
	for k, v := range p.Fields {
		obj[k] = v
	}
	obj[keyID] = p.ID
	obj[keyEmail] = p.Email
	obj[keyUsername] = p.Username
	return obj
}

func popString(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok {
		return ""
	}
	delete(obj, key)
	s, _ := v.(string)
	return s
}
