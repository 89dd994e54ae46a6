// Файл: cmd/watcher/main.go

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"inventory-system/internal/watcher"
	"inventory-system/pkg/config"
	applogger "inventory-system/pkg/logger"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(cfg.Server.BaseURL, os.Getenv("BOOTSTRAP_TOKEN"), logger)

	if err := w.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Наблюдатель остановлен по сигналу")
			return
		}
		logger.Error("Наблюдатель завершился с ошибкой", zap.Error(err))
		os.Exit(1)
	}
}
