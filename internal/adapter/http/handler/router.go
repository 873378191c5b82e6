package handler

import (
	"charity-ledger-gateway/internal/adapter/http/middleware"
	redisStore "charity-ledger-gateway/internal/adapter/storage/redis"
	"charity-ledger-gateway/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	GatewaySvc     ports.GatewayService
	AggregatorSvc  ports.AggregatorService
	Reconciler     ports.Reconciler
	MediaStore     ports.MediaStore
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(8 << 20)) // media uploads fit in 8 MB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:3000", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Health check (deep — verifies wired dependencies)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	sessionHandler := NewSessionHandler(deps.SessionSvc, deps.GatewaySvc, deps.Reconciler)
	dashboardHandler := NewDashboardHandler(deps.AggregatorSvc, deps.Reconciler)
	campaignHandler := NewCampaignHandler(deps.GatewaySvc, deps.MediaStore)
	adminHandler := NewAdminHandler(deps.GatewaySvc)

	v1 := r.Group("/api/v1")

	session := v1.Group("/session")
	{
		session.POST("/connect", rl("session"), sessionHandler.Connect)
		session.POST("/disconnect", rl("session"), sessionHandler.Disconnect)
		session.GET("", rl("reads"), sessionHandler.Current)
		session.GET("/status", rl("reads"), sessionHandler.Status)
		session.GET("/is-admin", rl("reads"), sessionHandler.IsAdmin)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("", rl("dashboard"), dashboardHandler.Get)
		dashboard.POST("/refresh", rl("dashboard"), dashboardHandler.Refresh)
		dashboard.GET("/reconciler", rl("reads"), dashboardHandler.ReconcilerState)
		dashboard.POST("/reconciler/attach", rl("session"), dashboardHandler.AttachReconciler)
		dashboard.POST("/reconciler/detach", rl("session"), dashboardHandler.DetachReconciler)
	}

	campaigns := v1.Group("/campaigns")
	{
		campaigns.GET("", rl("reads"), campaignHandler.List)
		campaigns.GET("/:id", rl("reads"), campaignHandler.Get)
		campaigns.POST("", rl("writes"), adminHandler.CreateCampaign)
		campaigns.POST("/:id/donations", rl("writes"), campaignHandler.Donate)
		campaigns.POST("/:id/disbursements", rl("writes"), adminHandler.Disburse)
		campaigns.PATCH("/:id/active", rl("writes"), adminHandler.SetActive)
		campaigns.POST("/:id/comments", rl("writes"), campaignHandler.AddComment)
		campaigns.POST("/:id/likes", rl("writes"), campaignHandler.Like)
		campaigns.DELETE("/:id/likes", rl("writes"), campaignHandler.Unlike)
	}

	v1.PUT("/admins", rl("writes"), adminHandler.SetAdmin)
	v1.POST("/media", rl("media"), campaignHandler.UploadMedia)

	return r
}
