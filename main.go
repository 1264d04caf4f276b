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

	"cafewifi/config"
	"cafewifi/controller"
	"cafewifi/database"
	"cafewifi/route"
	"cafewifi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadENV(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	csrf, err := utils.NewCSRF(cfg.SecretKey)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Set Gin mode
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	router, err := route.NewRouter(cfg, controller.NewCafeController(database.NewCafeStore(db)), csrf)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shut down: %v", err)
	}
}
