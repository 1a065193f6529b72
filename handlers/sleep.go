package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/types"
)

func (h *Handler) CreateSleep(w http.ResponseWriter, r *http.Request) {
	var sleep types.SleepRecord
	if err := json.NewDecoder(r.Body).Decode(&sleep); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if sleep.UserID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if sleep.QualityScore < 1 || sleep.QualityScore > 5 {
		writeError(w, "quality_score must be between 1 and 5", http.StatusBadRequest)
		return
	}

	sleep.ID = uuid.NewString()
	sleep.CreatedAt = time.Now()
	if sleep.Date == "" {
		sleep.Date = sleep.CreatedAt.Format("2006-01-02")
	}

	if err := h.Store.CreateSleep(sleep); err != nil {
		config.Logger.Error("Failed to save sleep record:", err)
		writeError(w, "Failed to create sleep record", http.StatusInternalServerError)
		return
	}

	if h.Settings.Snapshot().AIEnabled {
		result := h.AI.AnalyzeSleep(r.Context(), sleep)
		sleep.AIAnalysis = &result
	}

	writeJSON(w, http.StatusCreated, sleep)
}

func (h *Handler) GetSleep(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	records, err := h.Store.RecentSleep(userID, 30)
	if err != nil {
		config.Logger.Error("Failed to fetch sleep records:", err)
		writeError(w, "Failed to fetch sleep records", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, records)
}
