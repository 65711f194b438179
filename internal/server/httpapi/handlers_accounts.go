package httpapi

import (
	"net/http"
	"strconv"

	"github.com/ykarpenko/sessionkeeper/internal/server/accounts"
)

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type sessionResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

func sessionToWire(email string, sess *accounts.Session) *sessionResponse {
	return &sessionResponse{
		LocalID:      sess.LocalID,
		Email:        email,
		IDToken:      sess.IDToken,
		RefreshToken: sess.RefreshToken,
		ExpiresIn:    strconv.Itoa(int(sess.ExpiresIn.Seconds())),
	}
}

func handleSignUp(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := bindJSON(w, r, &req); err != nil {
			respondProviderError(w, http.StatusBadRequest, "INVALID_PAYLOAD")
			return
		}

		sess, err := deps.Accounts.SignUp(r.Context(), req.Email, []byte(req.Password))
		if err != nil {
			mapAccountError(w, err)
			return
		}

		deps.Logger.Info(r.Context(), "account created", "local_id", sess.LocalID)
		respondJSON(w, http.StatusOK, sessionToWire(req.Email, sess))
	}
}

func handleSignIn(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := bindJSON(w, r, &req); err != nil {
			respondProviderError(w, http.StatusBadRequest, "INVALID_PAYLOAD")
			return
		}

		sess, err := deps.Accounts.SignIn(r.Context(), req.Email, []byte(req.Password))
		if err != nil {
			mapAccountError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, sessionToWire(req.Email, sess))
	}
}
