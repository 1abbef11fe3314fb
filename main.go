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

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/adapter/llm"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/config"
	store "github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/repository"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/service"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/tools"
	transport "github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/transport/http"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting dashboard server...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Model: %s", cfg.LLMModel)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize LLM client
	llmClient := llm.NewLLMClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)

	// Initialize tool registry and policy engine
	registry := tools.NewBuiltinRegistry()
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(db, llmClient, registry, policyEngine, cfg)

	// Create HTTP server
	server := transport.NewServer(svc)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Dashboard API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down dashboard server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Dashboard server stopped")
}
