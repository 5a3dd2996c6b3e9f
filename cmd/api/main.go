package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/config"
	"github.com/willythepapi/FITART-v1/internal/app"
	"github.com/willythepapi/FITART-v1/internal/logger"
	"github.com/willythepapi/FITART-v1/internal/router"
	"github.com/willythepapi/FITART-v1/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.Log)
	gin.DefaultWriter = logger.Writer(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer a.Close()

	r := router.SetupRouter(cfg, a.UseCases, a.Deps())
	if err := server.New(cfg, r).Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
