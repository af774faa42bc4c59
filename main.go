package main

import (
	"log"
	"net/http"
	"os"

	"campus-eats-api/config"
	"campus-eats-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Initialize database
	config.InitDB(cfg.DBSource)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for frontend integration
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	// Serve uploaded vendor logos
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload dir:", err)
	}
	r.Static("/uploads", cfg.UploadDir)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Campus Eats API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍱 Welcome to the Campus Eats API",
			"health":  "/health",
			"roles":   []string{"student", "vendor", "admin"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r, cfg)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
