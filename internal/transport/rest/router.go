package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/amulet-backend/internal/config"
	"github.com/heartmarshall/amulet-backend/internal/transport/middleware"
	"github.com/heartmarshall/amulet-backend/internal/transport/rest/console"
)

// NewRouter mounts the health checks, the client API under /api, the
// Basic-Auth protected admin API under /admin_api and the admin console
// under /admin.
func NewRouter(
	cfg *config.Config,
	client *ClientHandler,
	admin *AdminHandler,
	health *HealthHandler,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method not allowed")
	})

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Limit("client", cfg.RateLimit.ClientPerMinute))
		r.Post("/", client.Dispatch)
		r.Post("/{action}", client.Dispatch)
	})

	// Throttle before auth so failed logins count against the limit.
	adminGuard := middleware.Chain(
		limiter.Limit("admin", cfg.RateLimit.AdminPerMinute),
		middleware.BasicAuth(cfg.Admin, logger),
	)

	r.Get("/", redirectTo(consolePath))
	r.Get("/admin", redirectTo(consolePath))
	r.With(adminGuard).Handle(consolePath+"*", console.Handler("/admin"))

	r.Route("/admin_api", func(r chi.Router) {
		r.Use(adminGuard)

		r.Route("/licenses", func(r chi.Router) {
			r.Get("/", admin.ListLicenses)
			r.Post("/", admin.CreateLicense)
			r.Get("/{id}", admin.GetLicense)
			r.Put("/{id}", admin.UpdateLicense)
			r.Delete("/{id}", admin.DeleteLicense)
			r.Post("/{id}/toggle", admin.ToggleLicense)
			r.Post("/{id}/credit", admin.AdjustCredit)
		})

		r.Route("/apikeys", func(r chi.Router) {
			r.Get("/", admin.ListAPIKeys)
			r.Post("/", admin.CreateAPIKey)
			r.Put("/{id}", admin.UpdateAPIKey)
			r.Delete("/{id}", admin.DeleteAPIKey)
		})

		r.Route("/voices", func(r chi.Router) {
			r.Get("/", admin.ListVoices)
			r.Post("/", admin.CreateVoice)
			r.Post("/upload", admin.UploadVoices)
			r.Put("/{id}", admin.UpdateVoice)
			r.Delete("/{id}", admin.DeleteVoice)
		})

		r.Get("/logs", admin.ListLogs)
		r.Get("/config", admin.GetConfig)
		r.Put("/config", admin.UpdateConfig)
		r.Get("/backup", admin.Backup)
		r.Get("/backup/licenses", admin.BackupLicenses)
	})

	return r
}

const consolePath = "/admin/"

func redirectTo(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, path, http.StatusFound)
	}
}
