package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"focusflow/adhd-assist/ai"
	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/handlers"
	"focusflow/adhd-assist/llm"
	"focusflow/adhd-assist/middleware"
	"focusflow/adhd-assist/routes"
	"focusflow/adhd-assist/store"
)

func main() {
	config.LoadEnv()
	config.InitLogger()

	settings := config.SettingsFromEnv()
	snap := settings.Snapshot()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "adhd-assist.db"
	}
	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer st.Close()

	client := llm.NewClient(settings)
	cache := ai.NewCache(snap.CacheDir, snap.CacheEnabled)
	aiService := ai.NewService(client, cache, st, settings)

	h := handlers.NewHandler(st, aiService, settings)

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, h)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	go func() {
		config.Logger.Info("Server is running on port ", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	config.Logger.Info("Server is shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		config.Logger.Error("Shutdown error:", err)
	}
}
