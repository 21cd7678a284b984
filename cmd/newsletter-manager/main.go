package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/newsletter-manager/internal/app"
	"github.com/Nazarious-ucu/newsletter-manager/internal/config"
	"github.com/Nazarious-ucu/newsletter-manager/pkg/logger"
)

// @title Newsletter Manager
// @version 1.0
// @description Lead capture, newsletters and invoices for a small newsletter business
// @host localhost:8080
// @BasePath /
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.Logging.FilePath, cfg.Logging.ServiceName, cfg.Logging.Level)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.New(*cfg, l).Start(ctx); err != nil {
		l.Fatal("application stopped with error", zap.Error(err))
	}
}
