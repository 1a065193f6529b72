package routes

import (
	"net/http"

	"focusflow/adhd-assist/handlers"
)

// RegisterRecordRoutes registers user, task, mood, sleep and reading routes
func RegisterRecordRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("POST /api/users", h.CreateUser)
	mux.HandleFunc("GET /api/users/{id}", h.GetUser)

	mux.HandleFunc("GET /api/tasks/{userId}", h.GetTasks)
	mux.HandleFunc("POST /api/tasks", h.CreateTask)
	mux.HandleFunc("PUT /api/tasks/{id}", h.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.DeleteTask)

	mux.HandleFunc("GET /api/mood/{userId}", h.GetMoods)
	mux.HandleFunc("POST /api/mood", h.CreateMood)

	mux.HandleFunc("GET /api/sleep/{userId}", h.GetSleep)
	mux.HandleFunc("POST /api/sleep", h.CreateSleep)

	mux.HandleFunc("GET /api/reading", h.GetReading)
	mux.HandleFunc("POST /api/reading", h.CreateReading)
}
