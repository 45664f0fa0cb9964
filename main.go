package main

import (
	"log"
	"os"

	"inkpress/config"
	"inkpress/routes"
	"inkpress/sessions"
	"inkpress/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to setup database: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	sess := sessions.NewStore(cfg.SessionDuration)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	routes.InkpressRouter(r, store, sess, cfg.UploadsDir)

	log.Printf("Server starting on :%s with session duration: %v", cfg.Port, cfg.SessionDuration)
	r.Run(":" + cfg.Port)
}
