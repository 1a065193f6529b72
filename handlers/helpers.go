package handlers

import (
	"encoding/json"
	"net/http"

	"focusflow/adhd-assist/ai"
	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/store"
)

// Handler bundles the dependencies every endpoint needs.
type Handler struct {
	Store    *store.Store
	AI       *ai.Service
	Settings *config.Settings
}

func NewHandler(st *store.Store, aiService *ai.Service, settings *config.Settings) *Handler {
	return &Handler{Store: st, AI: aiService, Settings: settings}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}
