// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns
// such as tracing, correlation IDs, logging, panic recovery, metrics,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/salonsuite/go-salon-backend/internal/config"
	"github.com/salonsuite/go-salon-backend/internal/domain"
	"github.com/salonsuite/go-salon-backend/internal/http/handlers"
	"github.com/salonsuite/go-salon-backend/internal/http/middleware"
	"github.com/salonsuite/go-salon-backend/internal/repo"
	"github.com/salonsuite/go-salon-backend/internal/services"
)

// clientRepoShim adapts the repository free functions to the
// services.ClientRepo interface expected by the ClientService. This keeps
// services decoupled from the concrete repo package while reusing the
// existing functions.
type clientRepoShim struct{}

// CreateClient proxies repo.CreateClient.
func (clientRepoShim) CreateClient(ctx context.Context, db *gorm.DB, firstName, lastName, phone string) (*domain.Client, error) {
	return repo.CreateClient(ctx, db, firstName, lastName, phone)
}

// GetClient proxies repo.GetClient.
func (clientRepoShim) GetClient(ctx context.Context, db *gorm.DB, id uint) (*domain.Client, error) {
	return repo.GetClient(ctx, db, id)
}

// ListClients proxies repo.ListClients.
func (clientRepoShim) ListClients(ctx context.Context, db *gorm.DB) ([]domain.Client, error) {
	return repo.ListClients(ctx, db)
}

// SearchClients proxies repo.SearchClients.
func (clientRepoShim) SearchClients(ctx context.Context, db *gorm.DB, tokens []string) ([]domain.Client, error) {
	return repo.SearchClients(ctx, db, tokens)
}

// UpdateClient proxies repo.UpdateClient.
func (clientRepoShim) UpdateClient(ctx context.Context, db *gorm.DB, id uint, firstName, lastName, phone string) error {
	return repo.UpdateClient(ctx, db, id, firstName, lastName, phone)
}

// DeleteClient proxies repo.DeleteClient.
func (clientRepoShim) DeleteClient(ctx context.Context, db *gorm.DB, id uint) error {
	return repo.DeleteClient(ctx, db, id)
}

// CountAppointmentsByStatus proxies repo.CountAppointmentsByStatus.
func (clientRepoShim) CountAppointmentsByStatus(ctx context.Context, db *gorm.DB, clientID uint, status domain.AppointmentStatus) (int64, error) {
	return repo.CountAppointmentsByStatus(ctx, db, clientID, status)
}

// DeleteAppointmentsForClient proxies repo.DeleteAppointmentsForClient.
func (clientRepoShim) DeleteAppointmentsForClient(ctx context.Context, db *gorm.DB, clientID uint) error {
	return repo.DeleteAppointmentsForClient(ctx, db, clientID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given
// Gin engine: observability (tracing, metrics), rate limiting, CORS and
// security headers, health and metrics endpoints, and the versioned public
// API.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter, gzip
//  6. Metrics
//  7. Rate limiter (per IP)
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB) and response compression
	r.Use(limitBody(1 << 20))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db
	clientSvc := services.NewClientService(db, clientRepoShim{})
	clientSvc.FoldAccents = cfg.SearchFoldAccents
	apptSvc := &services.AppointmentService{DB: db}
	h := handlers.New(clientSvc, apptSvc, nil)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Clients
		api.POST("/clients", h.CreateClient)
		api.GET("/clients", h.ListClients)
		api.GET("/clients/:id", h.GetClient)
		api.PUT("/clients/:id", h.UpdateClient)
		api.DELETE("/clients/:id", h.DeleteClient)
		api.GET("/clients/:id/appointments", h.ClientAppointments)

		// Appointments
		api.POST("/appointments", h.ScheduleAppointment)
		api.GET("/appointments/today", h.TodayAppointments)
		api.POST("/appointments/:id/complete", h.CompleteAppointment)
		api.POST("/appointments/:id/cancel", h.CancelAppointment)

		// Calendar
		api.GET("/calendar", h.MonthCalendar)
	}
}

// limitBody returns a Gin middleware that caps the request body size for
// all endpoints to maxBytes using http.MaxBytesReader.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
