package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/institute-dashboard-api/api/swagger"
	"github.com/noah-isme/institute-dashboard-api/internal/handler"
	"github.com/noah-isme/institute-dashboard-api/internal/models"
	"github.com/noah-isme/institute-dashboard-api/internal/repository"
	"github.com/noah-isme/institute-dashboard-api/internal/service"
	"github.com/noah-isme/institute-dashboard-api/pkg/cache"
	"github.com/noah-isme/institute-dashboard-api/pkg/config"
	"github.com/noah-isme/institute-dashboard-api/pkg/currency"
	"github.com/noah-isme/institute-dashboard-api/pkg/database"
	"github.com/noah-isme/institute-dashboard-api/pkg/logger"
)

// @title Institute Dashboard API
// @version 1.0.0
// @description Read-only management dashboard for a training institute: period metrics, revenue and expense series, fee payment risk and searchable lists.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type dataSource interface {
	Load(ctx context.Context) (*models.DashboardDataset, error)
	Version(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	location, err := cfg.Location()
	if err != nil {
		logr.Fatal("invalid timezone", zap.Error(err))
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsSvc := service.NewMetricsService()
	readiness := map[string]handler.Pinger{}

	var data dataSource
	switch cfg.DataSource {
	case config.DataSourceMemory:
		data = repository.NewMemoryDatasetRepository(repository.SampleDataset(time.Now().In(location)))
		logr.Warn("serving in-memory sample dataset")
	default:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer db.Close()
		data = repository.NewDatasetRepository(db, location, metricsSvc)
	}
	readiness["dataset"] = data

	var cacheRepo *repository.CacheRepository
	if cfg.Dashboard.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
			defer cacheRepo.Close()
			readiness["cache"] = cacheRepo
		}
	}
	var cacheSvc *service.CacheService
	if cacheRepo != nil {
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
	}

	validate := validator.New()
	money := currency.New(cfg.Currency.Symbol, cfg.Currency.Locale)
	authSvc := service.NewAuthService(logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Data:      data,
		Cache:     cacheSvc,
		Metrics:   metricsSvc,
		Validator: validate,
		Logger:    logr,
		Config: service.DashboardServiceConfig{
			CacheTTL:        cfg.Dashboard.CacheTTL,
			RiskHorizonDays: cfg.Dashboard.RiskHorizonDays,
			DefaultRange:    service.QuickRange(cfg.Dashboard.DefaultRange),
			Location:        location,
		},
	})
	listSvc := service.NewListService(data, money, validate, logr)
	exportSvc := service.NewExportService(listSvc, dashboardSvc, money, logr, nil, nil)

	router := newRouter(routerDeps{
		cfg:       cfg,
		logger:    logr,
		auth:      authSvc,
		metrics:   metricsSvc,
		dashboard: handler.NewDashboardHandler(dashboardSvc, exportSvc),
		lists:     handler.NewListHandler(listSvc, exportSvc),
		health:    handler.NewMetricsHandler(metricsSvc, readiness),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Env), zap.Bool("auth", cfg.JWT.Enabled))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
