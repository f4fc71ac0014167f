package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"hourlog.org/internal/audit"
	"hourlog.org/internal/auth"
)

func (a *API) handleUsersCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}
	users, err := a.auth.ListUsers(r.Context(), p)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"users": users,
		"count": len(users),
	})
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
	Active    *bool   `json:"active"`
}

func (a *API) handleUserResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceID(r.URL.Path, "/v1/users/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid user id")
		return
	}
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		user, err := a.auth.GetUser(r.Context(), p, id)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)

	case http.MethodPatch:
		var req updateUserRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		upd := auth.UserUpdate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Active:    req.Active,
		}
		if req.Role != nil {
			role, err := auth.ParseRole(*req.Role)
			if err != nil {
				handleServiceError(w, r, err)
				return
			}
			upd.Role = &role
		}
		user, err := a.auth.UpdateUser(r.Context(), p, id, upd)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "user_updated", map[string]any{
			"user_id": id,
		})
		writeJSON(w, http.StatusOK, user)

	case http.MethodDelete:
		if err := a.auth.DeactivateUser(r.Context(), p, id); err != nil {
			handleServiceError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "user_deactivated", map[string]any{
			"user_id": id,
		})
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}

func resourceID(path, prefix string) (int64, error) {
	raw := strings.TrimPrefix(path, prefix)
	raw = strings.TrimSuffix(raw, "/")
	return strconv.ParseInt(raw, 10, 64)
}
