package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/execsec/backoffice/internal/adapter/http/handler"
	"github.com/execsec/backoffice/internal/adapter/http/middleware"
	"github.com/execsec/backoffice/internal/adapter/ws"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/infrastructure/auth"
	"github.com/execsec/backoffice/internal/infrastructure/metrics"
	"github.com/execsec/backoffice/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	TenantHandler       *handler.TenantHandler
	UserHandler         *handler.UserHandler
	ExecutiveHandler    *handler.ExecutiveHandler
	PayableHandler      *handler.PayableHandler
	ExportHandler       *handler.ExportHandler
	CatalogHandler      *handler.CatalogHandler
	PersonHandler       *handler.PersonHandler
	TaskHandler         *handler.TaskHandler
	MeetingHandler      *handler.MeetingHandler
	NotificationHandler *handler.NotificationHandler
	HealthHandler       *handler.HealthHandler

	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Hub              *ws.Hub
	Metrics          *metrics.Metrics
	Logger           zerolog.Logger

	// RateLimit is requests per second per IP; zero disables limiting.
	RateLimit      float64
	RateLimitBurst int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if cfg.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitBurst, cfg.Metrics).Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Export progress websocket; the token comes as a query parameter
	// because browsers cannot set headers on websocket upgrades.
	if cfg.Hub != nil {
		r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
			claims, err := cfg.JWTManager.Verify(req.URL.Query().Get("token"))
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}
			cfg.Hub.HandleWebSocket(w, req, claims.UserID)
		})
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Everything below requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			// Idempotency middleware for mutating requests
			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
				r.Use(idempotencyMiddleware.Wrap)
			}

			r.Get("/auth/me", cfg.AuthHandler.Me)

			// Tenants (superadmin only)
			r.Route("/tenants", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleSuperadmin))
				r.Post("/", cfg.TenantHandler.Create)
				r.Get("/", cfg.TenantHandler.List)
				r.Get("/{id}", cfg.TenantHandler.Get)
				r.Put("/{id}", cfg.TenantHandler.Update)
				r.Delete("/{id}", cfg.TenantHandler.Delete)
			})

			// Users (admin and up)
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdmin))
				r.Post("/", cfg.UserHandler.Create)
				r.Get("/", cfg.UserHandler.List)
				r.Get("/{id}", cfg.UserHandler.Get)
				r.Put("/{id}", cfg.UserHandler.Update)
				r.Delete("/{id}", cfg.UserHandler.Delete)
			})

			// Executives
			r.Route("/executives", func(r chi.Router) {
				r.Post("/", cfg.ExecutiveHandler.Create)
				r.Get("/", cfg.ExecutiveHandler.List)
				r.Get("/{id}", cfg.ExecutiveHandler.Get)
				r.Put("/{id}", cfg.ExecutiveHandler.Update)
				r.Delete("/{id}", cfg.ExecutiveHandler.Delete)
			})

			// Accounts payable and the dashboard summary
			r.Route("/payables", func(r chi.Router) {
				r.Post("/", cfg.PayableHandler.Create)
				r.Get("/", cfg.PayableHandler.List)
				r.Get("/summary", cfg.PayableHandler.Summary)
				r.Post("/export", cfg.ExportHandler.Start)
				r.Get("/{id}", cfg.PayableHandler.Get)
				r.Put("/{id}", cfg.PayableHandler.Update)
				r.Delete("/{id}", cfg.PayableHandler.Delete)
				r.Post("/{id}/document", cfg.PayableHandler.AttachDocument)
				r.Get("/{id}/document", cfg.PayableHandler.DocumentURL)
			})

			// Export jobs
			r.Route("/exports", func(r chi.Router) {
				r.Get("/", cfg.ExportHandler.List)
				r.Get("/{id}", cfg.ExportHandler.Get)
			})

			// Reference registers
			r.Route("/departments", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.CreateDepartment)
				r.Get("/", cfg.CatalogHandler.ListDepartments)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteDepartment)
			})
			r.Route("/roles", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.CreateJobRole)
				r.Get("/", cfg.CatalogHandler.ListJobRoles)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteJobRole)
			})
			r.Route("/collaborators", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.CreateCollaborator)
				r.Get("/", cfg.CatalogHandler.ListCollaborators)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteCollaborator)
			})
			r.Route("/assets", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.CreateAsset)
				r.Get("/", cfg.CatalogHandler.ListAssets)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteAsset)
			})
			r.Route("/cost-centers", func(r chi.Router) {
				r.Post("/", cfg.CatalogHandler.CreateCostCenter)
				r.Get("/", cfg.CatalogHandler.ListCostCenters)
				r.Delete("/{id}", cfg.CatalogHandler.DeleteCostCenter)
			})

			// PF/PJ registers
			r.Route("/persons/{kind}", func(r chi.Router) {
				r.Post("/", cfg.PersonHandler.Create)
				r.Get("/", cfg.PersonHandler.List)
				r.Get("/{id}", cfg.PersonHandler.Get)
				r.Put("/{id}", cfg.PersonHandler.Update)
				r.Delete("/{id}", cfg.PersonHandler.Delete)
			})

			// Tasks
			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", cfg.TaskHandler.Create)
				r.Get("/", cfg.TaskHandler.List)
				r.Get("/{id}", cfg.TaskHandler.Get)
				r.Put("/{id}", cfg.TaskHandler.Update)
				r.Delete("/{id}", cfg.TaskHandler.Delete)
			})

			// Meetings
			r.Route("/meetings", func(r chi.Router) {
				r.Post("/", cfg.MeetingHandler.Create)
				r.Get("/", cfg.MeetingHandler.List)
				r.Get("/{id}", cfg.MeetingHandler.Get)
				r.Get("/{id}/tasks", cfg.TaskHandler.ListForMeeting)
				r.Put("/{id}", cfg.MeetingHandler.Update)
				r.Delete("/{id}", cfg.MeetingHandler.Delete)
			})

			// Notifications
			r.Route("/notifications", func(r chi.Router) {
				r.Post("/", cfg.NotificationHandler.Send)
				r.Get("/", cfg.NotificationHandler.List)
				r.Get("/{id}", cfg.NotificationHandler.Get)
			})
		})
	})

	return r
}
