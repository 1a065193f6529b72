package routes

import (
	"net/http"

	"focusflow/adhd-assist/handlers"
)

// RegisterAIRoutes registers all AI-related routes
func RegisterAIRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /api/ai/config", h.GetAIConfig)
	mux.HandleFunc("POST /api/ai/config", h.UpdateAIConfig)
	mux.HandleFunc("POST /api/ai/test", h.TestAIConnection)
	mux.HandleFunc("GET /api/ai/status", h.AIStatus)

	mux.HandleFunc("POST /api/ai/question", h.AnswerQuestion)
	mux.HandleFunc("GET /api/ai/daily-tips/{userId}", h.DailyTips)
	mux.HandleFunc("POST /api/ai/reading-content", h.GenerateReadingContent)
	mux.HandleFunc("POST /api/ai/task-decompose", h.DecomposeTask)
	mux.HandleFunc("GET /api/ai/predict-pattern/{userId}/{type}", h.PredictPattern)
}
