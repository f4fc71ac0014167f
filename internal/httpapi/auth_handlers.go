package httpapi

import (
	"errors"
	"net/http"
	"time"

	"hourlog.org/internal/audit"
	"hourlog.org/internal/auth"
	"hourlog.org/internal/obs"
)

const minPasswordLen = 8

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

type authResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      *auth.User `json:"user"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Password) < minPasswordLen {
		obs.ObserveRegistration("rejected")
		writeError(w, r, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		obs.ObserveRegistration("rejected")
		writeError(w, r, http.StatusBadRequest, "passwords do not match")
		return
	}

	user, err := a.auth.Register(r.Context(), auth.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, auth.ErrConflict) {
			obs.ObserveRegistration("conflict")
		} else {
			obs.ObserveRegistration("rejected")
		}
		handleServiceError(w, r, err)
		return
	}

	obs.ObserveRegistration("ok")
	audit.LogEvent(r.Context(), "user_registered", map[string]any{
		"user_id": user.ID,
	})
	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		obs.ObserveLogin("denied")
		// No detail about which check failed leaves the process.
		audit.LogEvent(r.Context(), "login_denied", nil)
		handleServiceError(w, r, err)
		return
	}

	obs.ObserveLogin("ok")
	audit.LogEvent(r.Context(), "login_ok", map[string]any{
		"user_id": result.User.ID,
	})
	writeJSON(w, http.StatusOK, authResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      result.User,
	})
}
