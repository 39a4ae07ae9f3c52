package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/online-training-program/backend/config"
	"github.com/online-training-program/backend/handlers"
	"github.com/online-training-program/backend/repository"
	"github.com/online-training-program/backend/service"
)

func main() {
	log.Println("Starting Online Training Program Backend")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.OpenDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer cfg.Close()

	userRepo := repository.NewUserRepository(cfg.DB)
	trainingRepo := repository.NewTrainingRepository(cfg.DB)
	allocationRepo := repository.NewAllocationRepository(cfg.DB)
	allocationService := service.NewAllocationService(allocationRepo)

	handler := handlers.NewHandler(userRepo, trainingRepo, allocationService)

	router := handlers.NewRouter(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
