package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales-dashboard/internal/core/config"
	"sales-dashboard/internal/core/logger"
	monitoradapter "sales-dashboard/internal/features/monitor/adapters"
	"sales-dashboard/internal/features/monitor/controller"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Monitor starting",
		zap.String("api_base_url", cfg.Monitor.APIBaseURL),
		zap.Int("refresh_interval_minutes", cfg.Monitor.RefreshIntervalMinutes),
	)

	source := monitoradapter.NewHTTPChartSource(cfg.Monitor.APIBaseURL)
	sales := monitoradapter.NewWriterSurface(os.Stdout, "sales")
	orders := monitoradapter.NewWriterSurface(os.Stdout, "orders")
	indicator := monitoradapter.NewWriterIndicator(os.Stdout)

	ctl := controller.New(source, sales, orders, indicator, controller.Config{
		RefreshInterval: time.Duration(cfg.Monitor.RefreshIntervalMinutes) * time.Minute,
	})
	defer ctl.Close()

	// No embedded payload outside the browser; fetch the default period.
	ctl.Start(nil)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	l.Info("Monitor shutting down")
}
