package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/types"
)

func (h *Handler) CreateMood(w http.ResponseWriter, r *http.Request) {
	var mood types.MoodRecord
	if err := json.NewDecoder(r.Body).Decode(&mood); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if mood.UserID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if mood.MoodScore < 1 || mood.MoodScore > 5 {
		writeError(w, "mood_score must be between 1 and 5", http.StatusBadRequest)
		return
	}

	mood.ID = uuid.NewString()
	mood.CreatedAt = time.Now()
	if mood.Date == "" {
		mood.Date = mood.CreatedAt.Format("2006-01-02")
	}

	if err := h.Store.CreateMood(mood); err != nil {
		config.Logger.Error("Failed to save mood record:", err)
		writeError(w, "Failed to create mood record", http.StatusInternalServerError)
		return
	}

	if h.Settings.Snapshot().AIEnabled {
		result := h.AI.AnalyzeMood(r.Context(), mood)
		mood.AIAnalysis = &result
	}

	writeJSON(w, http.StatusCreated, mood)
}

func (h *Handler) GetMoods(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	moods, err := h.Store.RecentMoods(userID, 30)
	if err != nil {
		config.Logger.Error("Failed to fetch mood records:", err)
		writeError(w, "Failed to fetch mood records", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, moods)
}
