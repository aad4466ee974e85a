package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"paperlens/adapters/llm"
	"paperlens/adapters/memstore"
	"paperlens/adapters/pdf"
	"paperlens/app"
	"paperlens/internal/config"
	"paperlens/ports"
	"paperlens/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration. A misconfigured analysis backend
	// stops us here, before any upload can be accepted.
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	summarizer, err := buildSummarizer(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize analysis backend: %v", err)
	}

	store := memstore.New()
	analysisService := app.NewAnalysisService(pdf.NewExtractor(), summarizer, store)
	comparisonService := app.NewComparisonService()

	gin.SetMode(appConfig.Server.GinMode)
	server, err := ui.NewServer(analysisService, comparisonService, store, summarizer.Backend(), appConfig.Upload.MaxFileBytes)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("🚀 Starting PaperLens server on port %s (analysis backend: %s)", appConfig.Server.Port, summarizer.Backend())
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}

// buildSummarizer selects the analysis backend from configuration.
func buildSummarizer(appConfig *config.Config) (ports.SummarizerPort, error) {
	switch appConfig.Analysis.Backend {
	case config.BackendOpenAI:
		return llm.NewOpenAISummarizer(
			appConfig.Analysis.OpenAIKey,
			appConfig.Analysis.OpenAIModel,
			appConfig.Analysis.MaxTokens,
			appConfig.Analysis.Temperature,
		)
	default:
		log.Println("🧪 Running with the mock analysis backend - summaries are canned demo content")
		return llm.NewMockSummarizer(appConfig.Analysis.MockDelay), nil
	}
}
