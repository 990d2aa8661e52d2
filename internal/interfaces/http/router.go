// Package http wires the gin engine, middleware chain, and routes of the
// risk service.
package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/mfo-shield/internal/config"
	"github.com/turtacn/mfo-shield/internal/infrastructure/monitoring"
	"github.com/turtacn/mfo-shield/internal/interfaces/http/handlers"
	"github.com/turtacn/mfo-shield/internal/interfaces/http/middleware"
	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/errors"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

// emptySubjectRiskPath is the raw path produced by a risk request whose
// subject segment is empty. The route tree cannot match it, so the
// NoRoute handler turns it into a parameter error instead of a 404.
const emptySubjectRiskPath = "/subjects//risk"

// Router is the HTTP surface of the risk service.
type Router struct {
	engine        *gin.Engine
	config        *config.Config
	logger        logger.Logger
	healthHandler *handlers.HealthHandler
	riskHandler   *handlers.RiskHandler
	metrics       *monitoring.Metrics
	tracing       *monitoring.TracingManager
	server        *http.Server
}

// NewRouter creates the router and sets the gin mode.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	healthHandler *handlers.HealthHandler,
	riskHandler *handlers.RiskHandler,
	metrics *monitoring.Metrics,
	tracing *monitoring.TracingManager,
) *Router {
	gin.SetMode(cfg.Server.Mode)

	return &Router{
		engine:        gin.New(),
		config:        cfg,
		logger:        log,
		healthHandler: healthHandler,
		riskHandler:   riskHandler,
		metrics:       metrics,
		tracing:       tracing,
	}
}

// SetupRoutes installs the middleware chain and registers all routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Observability(r.tracing.Tracer(), r.metrics))
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(cors.New(r.corsConfig()))

	if r.config.Idempotency.Enabled {
		store := cache.New(r.config.Idempotency.TTL, 2*r.config.Idempotency.TTL)
		r.engine.Use(middleware.Idempotency(store, &r.config.Idempotency, r.metrics, r.logger))
	}

	r.engine.GET(constants.DefaultHealthCheckPath, r.healthHandler.HealthCheck)
	r.engine.GET(constants.DefaultReadinessCheckPath, r.healthHandler.ReadinessCheck)
	r.engine.GET(constants.DefaultLivenessCheckPath, r.healthHandler.LivenessCheck)

	r.engine.GET(constants.DefaultMetricsPath, gin.WrapH(promhttp.Handler()))

	if r.config.Server.EnablePprof {
		pprof.Register(r.engine)
	}

	r.engine.POST("/subjects/:subject_id/risk", r.riskHandler.AssessRisk)

	r.engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodPost && c.Request.URL.Path == emptySubjectRiskPath {
			shieldErr := errors.ErrInvalidSubjectID()
			c.JSON(shieldErr.HTTPStatus(), errors.ToErrorResponse(shieldErr))
			return
		}

		notFound := errors.ErrEndpointNotFound()
		c.JSON(notFound.HTTPStatus(), errors.ToErrorResponse(notFound))
	})
}

// corsConfig builds the CORS policy from configuration. An empty or
// wildcard origin list allows all origins without credentials.
func (r *Router) corsConfig() cors.Config {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			middleware.RequestIDHeader,
			middleware.IdempotencyKeyHeader,
		},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	allowAll := len(r.config.CORS.AllowedOrigins) == 0
	for _, origin := range r.config.CORS.AllowedOrigins {
		if origin == "*" {
			allowAll = true
			break
		}
	}

	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = r.config.CORS.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	return corsConfig
}

// Engine exposes the underlying gin engine for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start sets up the routes and serves HTTP until shutdown.
func (r *Router) Start() error {
	r.SetupRoutes()

	addr := r.config.Server.Addr()
	r.server = &http.Server{
		Addr:           addr,
		Handler:        r.engine,
		ReadTimeout:    time.Duration(r.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(r.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(r.config.Server.IdleTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	r.logger.Info(context.Background(), "Starting HTTP server", logger.String("address", addr))

	go r.gracefulShutdown()

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// gracefulShutdown drains the server when a termination signal arrives.
func (r *Router) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	r.logger.Info(context.Background(), "Shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := r.server.Shutdown(ctx); err != nil {
		r.logger.Error(ctx, "Server forced to shutdown", err)
	}

	r.logger.Info(context.Background(), "HTTP server stopped")
}

// Stop shuts the HTTP server down, honoring the context deadline.
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}

	r.logger.Info(ctx, "Stopping HTTP server...")
	return r.server.Shutdown(ctx)
}
