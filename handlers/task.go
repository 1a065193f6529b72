package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/store"
	"focusflow/adhd-assist/types"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var task types.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		config.Logger.Error("Failed to decode task JSON:", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if task.UserID == "" || task.Title == "" {
		writeError(w, "Missing user_id or title", http.StatusBadRequest)
		return
	}

	task.ID = uuid.NewString()
	task.Completed = false
	task.CreatedAt = time.Now()
	if task.Priority == "" {
		task.Priority = types.PriorityLow
	}
	if task.Category == "" {
		task.Category = "general"
	}

	if err := h.Store.CreateTask(task); err != nil {
		config.Logger.Error("Failed to save task:", err)
		writeError(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	// Attach a decomposition when AI features are on. A degraded AI result
	// still carries a usable fallback and never fails the creation.
	if h.Settings.Snapshot().AIEnabled {
		result := h.AI.DecomposeTask(r.Context(), task)
		task.AISuggestions = &result
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	tasks, err := h.Store.RecentTasks(userID, 100)
	if err != nil {
		config.Logger.Error("Failed to fetch tasks:", err)
		writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var update types.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateTask(id, update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, "Task not found", http.StatusNotFound)
			return
		}
		config.Logger.Error("Failed to update task:", err)
		writeError(w, "Failed to update task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "task updated"})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.Store.DeleteTask(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, "Task not found", http.StatusNotFound)
			return
		}
		config.Logger.Error("Failed to delete task:", err)
		writeError(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "task deleted"})
}
