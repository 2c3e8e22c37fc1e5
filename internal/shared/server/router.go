package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"innotools-backend/internal/catalog"
	"innotools-backend/internal/export"
	"innotools-backend/internal/recommend"
	"innotools-backend/internal/services/health"
	"innotools-backend/internal/shared/config"
	"innotools-backend/internal/shared/server/middleware"
	"innotools-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	Health           *health.Service
	CatalogHandler   *catalog.Handler
	RecommendHandler *recommend.Handler
	ExportHandler    *export.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	respond.IncludeDetails(deps.Config.Env != "production")
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	deps.CatalogHandler.RegisterRoutes(api)
	deps.RecommendHandler.RegisterRoutes(api)
	deps.ExportHandler.RegisterRoutes(api)

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
