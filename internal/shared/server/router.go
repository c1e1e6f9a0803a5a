package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvscore-backend/internal/analyses"
	"cvscore-backend/internal/documents"
	"cvscore-backend/internal/shared/config"
	"cvscore-backend/internal/shared/metrics"
	"cvscore-backend/internal/shared/server/middleware"
	"cvscore-backend/internal/shared/server/respond"
	"cvscore-backend/internal/usage"
)

// RouterDeps carries the handlers the router registers.
type RouterDeps struct {
	Config          config.Config
	DocumentHandler *documents.Handler
	AnalysisHandler *analyses.Handler
	UsageHandler    *usage.Handler
}

const pollingRateLimitGroup = "POLLING"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	protected := api.Group("")
	protected.Use(
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":             {Rate: 10, Burst: 20},
				pollingRateLimitGroup: {Rate: 30, Burst: 60},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/analyses/:id" {
					return pollingRateLimitGroup
				}
				return ""
			},
		}),
	)

	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(protected)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(protected)
	}
	if deps.UsageHandler != nil {
		deps.UsageHandler.RegisterRoutes(protected)

		if deps.Config.Env == "dev" {
			dev := protected.Group("/dev")
			deps.UsageHandler.RegisterDevRoutes(dev)
		}
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
