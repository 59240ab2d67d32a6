package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"practicecoach/internal/app"
	"practicecoach/internal/config"
	"practicecoach/internal/logger"
	"practicecoach/internal/metrics"
	"practicecoach/internal/transport/rest"
)

// @title Practice Coach API
// @version 1.0
// @description Interview, aptitude and email-writing practice with AI answer analysis
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	defer log.Sync()

	metrics.Register(prometheus.DefaultRegisterer)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	application, err := app.New(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}

	if cfg.AI.IsEnabled() {
		log.Info("answer analysis proxy configured", zap.String("endpoint", cfg.AI.ProxyEndpoint()))
	} else {
		log.Warn("ai.base_url not set, answer analysis runs in offline heuristic mode")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           rest.NewRouter(application.Container()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.Int("port", cfg.Server.Port), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	application.Close(shutdownCtx)

	log.Info("server stopped")
}
