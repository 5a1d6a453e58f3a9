package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arena-backend/internal/config"
	"arena-backend/internal/gateway"
	"arena-backend/internal/handlers"
	"arena-backend/internal/models"
	"arena-backend/internal/orchestrator"
	"arena-backend/internal/router"
	"arena-backend/internal/store"
	"arena-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting Multi-Model Chat Arena...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if cfg.OpenRouterAPIKey == "" {
		log.Println("⚠ OPENROUTER_API_KEY is not set — model calls will fail until it is configured")
	} else {
		log.Println("✓ OpenRouter API key loaded")
	}

	// ──── Step 2: Load Model Catalog ────
	catalog := models.DefaultCatalog()
	log.Printf("✓ Model catalog loaded (%d models)", len(catalog))

	// ──── Step 3: Initialize Core Components ────
	requestStore := store.New()
	gatewayClient := gateway.NewClient(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL)
	wsHub := websocket.NewHub()
	log.Println("✓ WebSocket hub started")

	orch := orchestrator.New(
		requestStore,
		gatewayClient,
		catalog,
		wsHub,
		time.Duration(cfg.RequestTimeoutSecs)*time.Second,
	)
	log.Printf("✓ Orchestrator ready (per-model timeout: %ds)", cfg.RequestTimeoutSecs)

	// ──── Step 4: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(requestStore, orch, gatewayClient, catalog)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, wsHub, cfg.FrontendURL, cfg.ChatRateLimit)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Chat Arena ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
