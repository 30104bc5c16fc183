package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-dashboard-api/internal/handler"
	"github.com/noah-isme/institute-dashboard-api/internal/middleware"
	"github.com/noah-isme/institute-dashboard-api/internal/models"
	"github.com/noah-isme/institute-dashboard-api/internal/service"
	"github.com/noah-isme/institute-dashboard-api/pkg/config"
	"github.com/noah-isme/institute-dashboard-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/institute-dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/institute-dashboard-api/pkg/middleware/requestid"
)

type routerDeps struct {
	cfg       *config.Config
	logger    *zap.Logger
	auth      *service.AuthService
	metrics   *service.MetricsService
	dashboard *handler.DashboardHandler
	lists     *handler.ListHandler
	health    *handler.MetricsHandler
}

func newRouter(deps routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.logger))
	r.Use(corsmiddleware.New(deps.cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.metrics))

	r.GET("/health", deps.health.Health)
	r.GET("/ready", deps.health.Ready)
	r.GET("/metrics", deps.health.Prometheus)

	if deps.cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(deps.cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())
	guard := func(roles ...models.UserRole) []gin.HandlerFunc {
		if !deps.cfg.JWT.Enabled {
			return nil
		}
		return []gin.HandlerFunc{middleware.JWT(deps.auth), middleware.RequireRoles(roles...)}
	}
	managers := guard(models.RoleAdmin, models.RoleManager)
	everyone := guard(models.RoleAdmin, models.RoleManager, models.RoleStaff)

	dashboard := api.Group("/dashboard", managers...)
	dashboard.GET("", deps.dashboard.Summary)
	dashboard.GET("/payment-risk", deps.dashboard.PaymentRisk)
	dashboard.GET("/monthly-series/export", deps.dashboard.ExportMonthlySeries)

	api.GET("/metrics/snapshot", append(managers, deps.health.Snapshot)...)

	for _, entity := range service.ListEntities() {
		api.GET("/"+entity, append(everyone, deps.lists.List(entity))...)
		api.GET("/"+entity+"/export", append(managers, deps.lists.Export(entity))...)
	}

	return r
}
