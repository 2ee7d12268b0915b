package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/template-insights/internal/api"
	"github.com/ignite/template-insights/internal/config"
	"github.com/ignite/template-insights/internal/insights"
	"github.com/ignite/template-insights/internal/pkg/logger"
	"github.com/ignite/template-insights/internal/storage"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.RedactEnabled())

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to init export storage: %v", err)
	}

	handlers := api.NewHandlers(insights.NewClassifier(), store, cfg.Upload.MaxBytes())
	router := api.SetupRoutes(handlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "addr", addr, "export_dir", cfg.Storage.LocalPath)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "err", err.Error())
	}

	logger.Info("server stopped")
}
