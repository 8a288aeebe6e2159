package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/menowell-backend/internal/config"
	"github.com/heartmarshall/menowell-backend/internal/metrics"
	authsvc "github.com/heartmarshall/menowell-backend/internal/service/auth"
	"github.com/heartmarshall/menowell-backend/internal/transport/middleware"
	"github.com/heartmarshall/menowell-backend/internal/transport/rest"
)

type handlers struct {
	health   *rest.HealthHandler
	auth     *rest.AuthHandler
	me       *rest.MeHandler
	invite   *rest.InviteHandler
	journal  *rest.JournalHandler
	partner  *rest.PartnerHandler
	analysis *rest.AnalysisHandler
}

// newRouter registers every route. Each route gets its own metrics
// middleware so the mux pattern becomes the route label.
func newRouter(
	h handlers,
	authService *authsvc.Service,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		chain := append([]middleware.Middleware{middleware.Metrics(m, pattern)}, mws...)
		mux.Handle(pattern, middleware.Chain(chain...)(fn))
	}

	api := limiter.Limit("api", cfg.RateLimit.Default)
	private := []middleware.Middleware{api, middleware.RequireAuth}

	// Probes and metrics
	route("GET /live", h.health.Live)
	route("GET /ready", h.health.Ready)
	route("GET /health", h.health.Health)
	mux.Handle("GET /metrics", m.Handler())

	// Auth
	route("POST /auth/signin", h.auth.SignIn, limiter.Limit("signin", cfg.RateLimit.SignIn))
	route("GET /auth/providers", h.auth.Providers, api)

	route("GET /me", h.me.Get, private...)

	// Invite linking
	route("POST /invites", h.invite.Issue, private...)
	route("POST /invites/redeem", h.invite.Redeem,
		limiter.Limit("redeem", cfg.RateLimit.Redeem), middleware.RequireAuth)

	// Shared view
	route("GET /partner/entries", h.partner.Entries, private...)
	route("GET /partner/entries/stream", h.partner.Stream, private...)

	// Journal
	route("GET /journal", h.journal.List, private...)
	route("POST /journal", h.journal.Create, private...)
	route("GET /journal/{id}", h.journal.Get, private...)
	route("PATCH /journal/{id}", h.journal.Update, private...)
	route("DELETE /journal/{id}", h.journal.Delete, private...)

	route("POST /analysis", h.analysis.Analyze, private...)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.TrackUser,
	)(mux)
}
