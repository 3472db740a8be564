package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/openvote/election-backend/internal/app"
	"github.com/openvote/election-backend/internal/config"
	"github.com/openvote/election-backend/utils"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/local.yaml", "path to config file")
	flag.Parse()

	cfg := config.Load(configPath)
	logger := utils.New(cfg.Env)

	application := app.NewApp(logger, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := application.HTTPServer.Run(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Println("HTTP server closed gracefully")
			} else {
				log.Fatal("failed to run HTTP server", slog.String("error", err.Error()))
			}
		}
	}()

	logger.Info("election service started", slog.String("env", cfg.Env), slog.Int("port", cfg.HTTP.Port))

	<-ctx.Done()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Fatal("failed to stop application", slog.String("error", err.Error()))
	}
}
