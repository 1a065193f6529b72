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

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user types.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if user.Name == "" {
		writeError(w, "Missing name", http.StatusBadRequest)
		return
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	if err := h.Store.CreateUser(user); err != nil {
		config.Logger.Error("Failed to create user:", err)
		writeError(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user, err := h.Store.GetUser(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		config.Logger.Error("Failed to fetch user:", err)
		writeError(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
