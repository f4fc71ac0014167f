package httpapi

import (
	"net/http"
	"time"

	"hourlog.org/internal/audit"
	"hourlog.org/internal/timesheet"
)

type createTimesheetRequest struct {
	UserID      int64     `json:"user_id,omitempty"`
	Date        time.Time `json:"date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
}

func (a *API) handleTimesheetsCollection(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		sheets, err := a.timesheets.List(r.Context(), p)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"timesheets": sheets,
			"count":      len(sheets),
		})

	case http.MethodPost:
		var req createTimesheetRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		ts, err := a.timesheets.Create(r.Context(), p, timesheet.CreateRequest{
			UserID:      req.UserID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Description: req.Description,
		})
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "timesheet_created", map[string]any{
			"timesheet_id": ts.ID,
			"owner_id":     ts.UserID,
		})
		writeJSON(w, http.StatusCreated, ts)

	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

type updateTimesheetRequest struct {
	Date        *time.Time `json:"date"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
}

func (a *API) handleTimesheetResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceID(r.URL.Path, "/v1/timesheets/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid timesheet id")
		return
	}
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		ts, err := a.timesheets.Get(r.Context(), p, id)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ts)

	case http.MethodPatch:
		var req updateTimesheetRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		upd := timesheet.Update{
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Description: req.Description,
		}
		if req.Status != nil {
			status, err := timesheet.ParseStatus(*req.Status)
			if err != nil {
				handleServiceError(w, r, err)
				return
			}
			upd.Status = &status
		}
		ts, err := a.timesheets.Update(r.Context(), p, id, upd)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "timesheet_updated", map[string]any{
			"timesheet_id": id,
		})
		writeJSON(w, http.StatusOK, ts)

	case http.MethodDelete:
		if err := a.timesheets.Delete(r.Context(), p, id); err != nil {
			handleServiceError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "timesheet_deleted", map[string]any{
			"timesheet_id": id,
		})
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}
