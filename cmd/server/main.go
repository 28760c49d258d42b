package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/analyzer"
	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/config"
	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/fetcher"
	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/logger"
	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	geminiClient, err := analyzer.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer geminiClient.Close()

	profileFetcher := fetcher.NewClient(fetcher.Options{
		Timeout:  cfg.FetchTimeout,
		CacheTTL: cfg.CacheTTL,
		MaxPosts: cfg.MaxPosts,
	})

	pipeline := analyzer.New(geminiClient)
	handler := web.NewHandler(profileFetcher, pipeline, logger.Log)

	router := gin.Default()

	router.GET("/", handler.ServeIndex)
	router.POST("/api/analyze", handler.HandleAnalyze)
	router.GET("/health", handler.HandleHealth)

	logger.Log.Infof("Instagram Profile Analyzer starting on port %s", cfg.Port)
	logger.Log.Infof("UI available at: http://localhost:%s/", cfg.Port)
	logger.Log.Infof("Analyze endpoint available at: http://localhost:%s/api/analyze", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("Server failed to start: %v", err)
	}
}
