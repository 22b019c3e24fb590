package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"portal-backend/handlers"
	"portal-backend/llm"
	"portal-backend/repository"
	"portal-backend/service"
	"portal-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const defaultCacheTTL = 60 * time.Second

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// Configure record sources
	sources, err := storage.SourcesFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure record sources: %v", err)
	}
	if len(sources) == 0 {
		log.Println("Warning: no record sources configured, lookups will fail until FAMILIA_*/SINIESTROS_* are set")
	} else {
		for _, src := range sources {
			log.Printf("Record source configured: %s", src.Name())
		}
	}

	expedienteRepo := repository.NewExpedienteRepository(sources, cacheTTLFromEnv())

	// Initialize text generation provider
	provider := llm.FromEnv(context.Background())

	// Initialize services
	expedienteService := service.NewExpedienteService(
		service.WithExpedienteRepository(expedienteRepo),
		service.WithRewriteProvider(provider),
	)
	cartaService := service.NewCartaService(
		service.CartaWithProvider(provider),
	)
	asistenteService := service.NewAsistenteService(
		service.AsistenteWithProvider(provider),
	)

	// Initialize handlers
	expedienteHandler := handlers.NewExpedienteHandler(expedienteService)
	cartaHandler := handlers.NewCartaHandler(cartaService)
	asistenteHandler := handlers.NewAsistenteHandler(asistenteService)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("/expediente/:dni", expedienteHandler.GetExpediente)
		api.POST("/generar-carta", cartaHandler.GenerarCarta)
		api.POST("/asistente-justina", asistenteHandler.Responder)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func cacheTTLFromEnv() time.Duration {
	raw := os.Getenv("EXPEDIENTES_CACHE_TTL_SECONDS")
	if raw == "" {
		return defaultCacheTTL
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid EXPEDIENTES_CACHE_TTL_SECONDS %q, using default", raw)
		return defaultCacheTTL
	}
	return time.Duration(seconds) * time.Second
}
