package apiHttp

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/managejob/backend/docs"
	"github.com/managejob/backend/internal/config"
	"github.com/managejob/backend/internal/service"
	"github.com/managejob/backend/pkg/auth"
	"github.com/managejob/backend/pkg/limiter"
	"github.com/managejob/backend/pkg/logger"
	"github.com/managejob/backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

// @title ManageJob API
// @version 1.0
// @description Job board backend API

// @BasePath /api

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandlers(
	services *service.Services,
	tokenManager auth.TokenManager,
	cfg *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	api := router.Group("/api")

	h.initAuthRoutes(api)
	h.initProfileRoutes(api)
	h.initJobRoutes(api)
	h.initApplicationRoutes(api)
	h.initReviewRoutes(api)
	h.initSearchRoutes(api)
}
