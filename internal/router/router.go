package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-console/internal/handler"
	"github.com/jwalitptl/clinic-console/internal/middleware"
)

// Handler is anything that can mount its routes on the facade.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine *gin.Engine
}

// New builds the facade engine: logging and recovery middleware, the
// screen handlers under /api/v1, plus /health and /metrics.
func New(log zerolog.Logger, registry *prometheus.Registry, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(middleware.Logger(log))
	engine.Use(gin.Recovery())

	engine.GET("/health", handler.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
