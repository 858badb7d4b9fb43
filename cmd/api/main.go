package main

import (
	"context"
	"log"

	"tailor-backend/internal/llm/gemini"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("llm client: %v", err)
	}

	r := server.NewRouter(cfg, client)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
