package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/docgen"
	"tailor-backend/internal/llm"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/shared/diagnostics"
	"tailor-backend/internal/shared/metrics"
	"tailor-backend/internal/shared/server/middleware"
	"tailor-backend/internal/shared/server/respond"
	"tailor-backend/internal/tailor"
	"tailor-backend/web"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, client llm.Client) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	sink := diagnostics.NewFileSink(cfg.DebugLogPath)
	tailorHandler := tailor.NewHandler(tailor.NewService(client, sink))
	docHandler := docgen.NewHandler()

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index)
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	tailorHandler.RegisterRoutes(api)
	docHandler.RegisterRoutes(api)

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
