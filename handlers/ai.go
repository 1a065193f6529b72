package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"focusflow/adhd-assist/types"
)

type aiConfigRequest struct {
	APIKey  string `json:"apiKey"`
	Model   string `json:"model"`
	BaseURL string `json:"baseUrl"`
}

func (h *Handler) GetAIConfig(w http.ResponseWriter, r *http.Request) {
	snap := h.Settings.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"configured": h.Settings.Configured(),
		"model":      snap.Model,
		"baseUrl":    snap.BaseURL,
	})
}

func (h *Handler) UpdateAIConfig(w http.ResponseWriter, r *http.Request) {
	var req aiConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.APIKey) == "" {
		writeError(w, "API key must not be empty", http.StatusBadRequest)
		return
	}

	h.AI.UpdateConfig(req.APIKey, req.Model, req.BaseURL)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "AI configuration updated"})
}

func (h *Handler) TestAIConnection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.AI.TestConnection(r.Context()))
}

func (h *Handler) AIStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.AI.Status())
}

type questionRequest struct {
	UserID   string `json:"user_id"`
	Question string `json:"question"`
	Context  string `json:"context"`
}

func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, "Missing question", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.AI.AnswerQuestion(r.Context(), req.Question, req.UserID, req.Context))
}

func (h *Handler) DailyTips(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	writeJSON(w, http.StatusOK, h.AI.DailyTips(r.Context(), userID))
}

type readingContentRequest struct {
	UserID     string `json:"user_id"`
	Topic      string `json:"topic"`
	Difficulty int    `json:"difficulty"`
}

func (h *Handler) GenerateReadingContent(w http.ResponseWriter, r *http.Request) {
	var req readingContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, "Missing topic", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.AI.GenerateReading(r.Context(), req.Topic, req.Difficulty, req.UserID))
}

type decomposeRequest struct {
	Task taskInput `json:"task"`
}

type taskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

func (h *Handler) DecomposeTask(w http.ResponseWriter, r *http.Request) {
	var req decomposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Task.Title) == "" {
		writeError(w, "Missing task title", http.StatusBadRequest)
		return
	}

	task := types.Task{
		Title:       req.Task.Title,
		Description: req.Task.Description,
		Priority:    req.Task.Priority,
		DueDate:     req.Task.DueDate,
	}
	writeJSON(w, http.StatusOK, h.AI.DecomposeTask(r.Context(), task))
}

func (h *Handler) PredictPattern(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	kind := r.PathValue("type")

	writeJSON(w, http.StatusOK, h.AI.PredictPattern(r.Context(), userID, kind))
}
