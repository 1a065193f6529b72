package routes

import (
	"net/http"

	"focusflow/adhd-assist/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, h *handlers.Handler) {
	RegisterRecordRoutes(mux, h)
	RegisterAIRoutes(mux, h)
}
