package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/types"
)

func (h *Handler) CreateReading(w http.ResponseWriter, r *http.Request) {
	var content types.ReadingContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if content.Title == "" || content.Content == "" {
		writeError(w, "Missing title or content", http.StatusBadRequest)
		return
	}

	content.ID = uuid.NewString()
	content.CreatedAt = time.Now()
	if content.DifficultyLevel == 0 {
		content.DifficultyLevel = 1
	}
	if content.Category == "" {
		content.Category = "general"
	}

	if err := h.Store.CreateReading(content); err != nil {
		config.Logger.Error("Failed to save reading content:", err)
		writeError(w, "Failed to create reading content", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, content)
}

func (h *Handler) GetReading(w http.ResponseWriter, r *http.Request) {
	difficulty := 0
	if v := r.URL.Query().Get("difficulty"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, "Invalid difficulty", http.StatusBadRequest)
			return
		}
		difficulty = n
	}
	category := r.URL.Query().Get("category")

	contents, err := h.Store.ListReading(difficulty, category)
	if err != nil {
		config.Logger.Error("Failed to fetch reading contents:", err)
		writeError(w, "Failed to fetch reading contents", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, contents)
}
