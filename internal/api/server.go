package api

import (
	"net/http"
	"time"

	"github.com/altechdata/postcode-api/internal/api/handlers"
	"github.com/altechdata/postcode-api/internal/api/middleware"
	"github.com/altechdata/postcode-api/internal/config"
	"github.com/altechdata/postcode-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	Router      *gin.Engine
	config      *config.Config
	logger      *logrus.Logger
	services    *services.Container
	rateLimiter *middleware.RateLimiter
	metrics     *handlers.Metrics
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) *Server {
	server := &Server{
		config:   cfg,
		logger:   logger,
		services: services,
		metrics:  handlers.NewMetrics(),
	}

	server.setupRouter()
	return server
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()
	s.Router.HandleMethodNotAllowed = true

	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())

	s.rateLimiter = middleware.NewRateLimiter(s.config.Security.RateLimit, s.services.GetRedisClient(), s.logger)

	// Probes are not rate limited
	healthHandler := handlers.NewHealthHandler(s.services, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)
	s.Router.GET("/metrics", handlers.NewMetricsHandler(s.metrics, s.rateLimiter, s.logger).GetMetrics)

	if s.config.Server.Environment != "production" {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	postcodesHandler := handlers.NewPostcodesHandler(s.services.LookupService, s.metrics, s.logger)
	limited := s.Router.Group("/", s.rateLimiter.Middleware())
	{
		limited.GET("/hello", postcodesHandler.Hello)
		limited.POST("/postcodes", postcodesHandler.LookupJSON)
		limited.POST("/", postcodesHandler.LookupForm)
	}

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "The requested resource was not found",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
		})
	})

	s.Router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":     "The requested method is not allowed for this resource",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
		})
	})
}

// Close stops background work owned by the server
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}
