package api

import (
	"net/http"
	"time"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}

	folders, err := h.folders.List(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	type folderPayload struct {
		ID           int64     `json:"id"`
		Title        string    `json:"title"`
		Description  *string   `json:"description"`
		OwnerID      int64     `json:"owner_id"`
		ShareCode    string    `json:"share_code"`
		IsShareable  bool      `json:"is_shareable"`
		TotalWords   int       `json:"total_words"`
		TotalQuizzes int       `json:"total_quizzes"`
		CreatedAt    time.Time `json:"created_at"`
	}

	payload := make([]folderPayload, 0, len(folders))
	for _, f := range folders {
		payload = append(payload, folderPayload{
			ID:           f.ID,
			Title:        f.Title,
			Description:  f.Description,
			OwnerID:      f.OwnerID,
			ShareCode:    f.ShareCode,
			IsShareable:  f.IsShareable,
			TotalWords:   f.TotalWords,
			TotalQuizzes: f.TotalQuizzes,
			CreatedAt:    f.CreatedAt,
		})
	}

	respondJSON(w, http.StatusOK, true, "Folders retrieved successfully", struct {
		Folders []folderPayload `json:"folders"`
	}{
		Folders: payload,
	})
}

func (h *Handler) folderWords(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	folderID, err := pathID(r, "folderID")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, false, "Invalid folder id", nil)
		return
	}

	words, err := h.folders.Words(r.Context(), userID, folderID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	type wordPayload struct {
		ID              int64   `json:"id"`
		Word            string  `json:"word"`
		Translation     string  `json:"translation"`
		Definition      *string `json:"definition"`
		ExampleSentence *string `json:"example_sentence"`
		OrderIndex      int     `json:"order_index"`
	}

	payload := make([]wordPayload, 0, len(words))
	for _, word := range words {
		payload = append(payload, wordPayload{
			ID:              word.ID,
			Word:            word.Word,
			Translation:     word.Translation,
			Definition:      word.Definition,
			ExampleSentence: word.ExampleSentence,
			OrderIndex:      word.OrderIndex,
		})
	}

	respondJSON(w, http.StatusOK, true, "Words retrieved successfully", struct {
		Words []wordPayload `json:"words"`
	}{
		Words: payload,
	})
}
