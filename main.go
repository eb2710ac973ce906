package main

import (
	"log"
	"os"

	"prospect-outreach/config"
	"prospect-outreach/database"
	"prospect-outreach/handlers"
	"prospect-outreach/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	llmService := services.NewLLMService(cfg)
	pipeline := services.NewPipeline(
		services.NewSummarizer(cfg, llmService),
		services.NewMessageComposer(cfg, llmService),
	)
	messageHandler := handlers.NewMessageHandler(pipeline, services.NewHistoryService(db))

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
	r := gin.Default()
	messageHandler.RegisterRoutes(r)

	log.Printf("Starting prospect-outreach on :%s (provider=%s, model=%s)", cfg.ServerPort, cfg.LLMProvider, cfg.Model)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
