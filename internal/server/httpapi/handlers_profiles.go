package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCreateProfile stores a new profile record. The body is a flat JSON
// object; unknown keys become extra profile fields.
func handleCreateProfile(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var obj map[string]any
		if err := bindJSON(w, r, &obj); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]any{})
			return
		}

		profile := profileFromWire(obj)

		profile, err := deps.Profiles.Create(r.Context(), profile)
		if err != nil {
			deps.Logger.Error(r.Context(), "profile create failed", "error", err)
			respondStoreError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, profileToWire(profile))
	}
}

func handleGetProfile(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		profile, err := deps.Profiles.GetByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, profileToWire(profile))
	}
}

// handleListProfiles returns all profiles matching the email query
// parameter, oldest first. No matches is an empty array, not an error.
func handleListProfiles(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")

		list, err := deps.Profiles.ListByEmail(r.Context(), email)
		if err != nil {
			deps.Logger.Error(r.Context(), "profile list failed", "error", err)
			respondStoreError(w, err)
			return
		}

		out := make([]map[string]any, 0, len(list))
		for _, p := range list {
			out = append(out, profileToWire(p))
		}

		respondJSON(w, http.StatusOK, out)
	}
}
