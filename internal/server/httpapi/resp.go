package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ykarpenko/sessionkeeper/internal/common"
	"github.com/ykarpenko/sessionkeeper/internal/server/accounts"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondProviderError renders the identity endpoint error envelope:
//
//	{"error": {"code": 400, "message": "EMAIL_EXISTS"}}
func respondProviderError(w http.ResponseWriter, status int, code string) {
	respondJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": code,
		},
	})
}

// mapAccountError picks the HTTP status and wire code for a sign-up/sign-in
// failure. Unknown errors become a 500.
func mapAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounts.ErrEmailExists),
		errors.Is(err, accounts.ErrInvalidEmail),
		errors.Is(err, accounts.ErrWeakPassword),
		errors.Is(err, accounts.ErrEmailNotFound),
		errors.Is(err, accounts.ErrInvalidPassword):
		respondProviderError(w, http.StatusBadRequest, err.Error())
	default:
		respondProviderError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
	}
}

// respondStoreError renders profile store failures the way a flat REST
// store would: 404 with an empty object for missing records, 500 otherwise.
func respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]any{})
		return
	}
	respondJSON(w, http.StatusInternalServerError, map[string]any{})
}
