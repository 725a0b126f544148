package api

import (
	"net/http"
	"time"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}

	user, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, true, "Profile retrieved successfully", struct {
		ID                int64     `json:"id"`
		Username          string    `json:"username"`
		Email             string    `json:"email"`
		TotalQuizzesTaken int       `json:"total_quizzes_taken"`
		CreatedAt         time.Time `json:"created_at"`
	}{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		TotalQuizzesTaken: user.TotalQuizzesTaken,
		CreatedAt:         user.CreatedAt,
	})
}
