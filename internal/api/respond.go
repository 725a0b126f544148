package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/service"
	"go.uber.org/zap"
)

type response struct {
	Success bool        `json:"success"`
	Details string      `json:"details"`
	Data    interface{} `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, success bool, details string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{
		Success: success,
		Details: details,
		Data:    data,
	})
}

// respondError maps the service error taxonomy onto HTTP statuses. Internal
// failures are logged and reported with a generic message; no internals leak.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrEmptyAnswer),
		errors.Is(err, service.ErrEmptyFolder):
		respondJSON(w, http.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, service.ErrNotAuthorized):
		respondJSON(w, http.StatusForbidden, false, err.Error(), nil)
	case errors.Is(err, service.ErrNotFound):
		respondJSON(w, http.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, service.ErrNotActive), errors.Is(err, service.ErrInvalidState):
		respondJSON(w, http.StatusConflict, false, err.Error(), nil)
	default:
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, false, "Internal server error", nil)
	}
}
