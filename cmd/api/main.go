package main

import (
	"context"
	"log"
	"time"

	"sales-dashboard/internal/core/cache"
	"sales-dashboard/internal/core/config"
	"sales-dashboard/internal/core/database"
	"sales-dashboard/internal/core/logger"
	"sales-dashboard/internal/core/server"
	"sales-dashboard/internal/features/reports/adapters"
	"sales-dashboard/internal/features/reports/handler"
	"sales-dashboard/internal/features/reports/ports"
	"sales-dashboard/internal/features/reports/service"

	"go.uber.org/zap"
)

// @title Sales Dashboard API
// @version 1.0
// @description Admin sales dashboard: time-bucketed aggregation of orders with chart data endpoints.
// @contact.name API Support
// @contact.email support@sales-dashboard.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
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
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Open the order store and verify it before serving anything.
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		l.Fatal("Order store open failed", zap.Error(err))
	}
	defer db.Close()

	repo := adapters.NewSQLiteSalesRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repo.Migrate(ctx); err != nil {
		l.Fatal("Order store migration failed", zap.Error(err))
	}
	if err := repo.Ping(ctx); err != nil {
		l.Fatal("Order store health check failed", zap.Error(err))
	}
	l.Info("Order store verified", zap.String("path", cfg.Database.Path))

	reportSvc := service.NewReportService(repo, service.Limits{
		TopProducts:  cfg.Dashboard.TopProductsLimit,
		RecentOrders: cfg.Dashboard.RecentOrdersLimit,
	})

	// Chart cache is optional: no Redis URL or a zero TTL disables it.
	var chartCache ports.ChartDataCache
	if cfg.Cache.RedisURL != "" && cfg.Cache.ChartTTLSeconds > 0 {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Redis cache init failed", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			l.Fatal("Redis health check failed", zap.Error(err))
		}
		chartCache = adapters.NewRedisChartCache(redisCache, time.Duration(cfg.Cache.ChartTTLSeconds)*time.Second)
		l.Info("Chart cache enabled", zap.Int("ttl_seconds", cfg.Cache.ChartTTLSeconds))
	}

	dashboardHandler, err := handler.NewDashboardHandler(reportSvc, chartCache, cfg.Dashboard.WindowDays)
	if err != nil {
		l.Fatal("Dashboard handler init failed", zap.Error(err))
	}

	srv := server.New(cfg)
	dashboardHandler.Register(srv.App)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
