package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"paypal-subscribe/internal/client"
	"paypal-subscribe/internal/config"
	"paypal-subscribe/internal/repository"
	"paypal-subscribe/internal/server"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := server.NewLogger(cfg.Log)

	db, err := client.InitDB(cfg.Database)
	if err != nil {
		logger.Fatalf("init database: %v", err)
	}

	planRepo := repository.NewPlanRepository(db)
	if err := planRepo.Seed(context.Background()); err != nil {
		logger.Fatalf("seed plans: %v", err)
	}

	srv, err := server.NewServer(cfg, planRepo, logger)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Infof("Starting HTTP server on %s (%s)", serverAddr, cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("Signal received, starting graceful shutdown...")

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("HTTP server shutdown error: %v", err)
	}
}
