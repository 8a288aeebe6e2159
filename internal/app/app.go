package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/menowell-backend/internal/adapter/postgres"
	inviterepo "github.com/heartmarshall/menowell-backend/internal/adapter/postgres/invite"
	journalrepo "github.com/heartmarshall/menowell-backend/internal/adapter/postgres/journal"
	userrepo "github.com/heartmarshall/menowell-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/menowell-backend/internal/adapter/provider/devidentity"
	"github.com/heartmarshall/menowell-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/menowell-backend/internal/adapter/provider/sentiment"
	authpkg "github.com/heartmarshall/menowell-backend/internal/auth"
	"github.com/heartmarshall/menowell-backend/internal/config"
	"github.com/heartmarshall/menowell-backend/internal/domain"
	"github.com/heartmarshall/menowell-backend/internal/metrics"
	analysissvc "github.com/heartmarshall/menowell-backend/internal/service/analysis"
	authsvc "github.com/heartmarshall/menowell-backend/internal/service/auth"
	invitesvc "github.com/heartmarshall/menowell-backend/internal/service/invite"
	journalsvc "github.com/heartmarshall/menowell-backend/internal/service/journal"
	sharingsvc "github.com/heartmarshall/menowell-backend/internal/service/sharing"
	usersvc "github.com/heartmarshall/menowell-backend/internal/service/user"
	"github.com/heartmarshall/menowell-backend/internal/transport/middleware"
	"github.com/heartmarshall/menowell-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database and the change feed, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("notify_backend", cfg.Notify.Backend),
	)

	a, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	return a.serve(ctx)
}

// application holds the wired dependencies of one server process.
type application struct {
	cfg     *config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	feed    *feedHandle
	limiter *middleware.RateLimiter
	handler http.Handler
}

func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *application, err error) {
	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	defer func() {
		if err != nil {
			pool.Close()
		}
	}()

	m := metrics.New()

	feed, err := newChangeFeed(cfg.Notify, pool, m.DroppedEvent, logger)
	if err != nil {
		return nil, err
	}

	// Repositories
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	invites := inviterepo.New(pool)
	entries := journalrepo.New(pool)

	// Services
	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, identityVerifiers(cfg.Auth, logger), jwt)
	userService := usersvc.NewService(logger, users)
	inviteService := invitesvc.NewService(logger, invites, users, txm, feed, m, cfg.Invite)
	journalService := journalsvc.NewService(logger, entries, feed)
	sharingService := sharingsvc.NewService(logger, users, entries, txm, feed, m)
	analysisService := analysissvc.NewService(logger, sentimentClient(cfg.Sentiment, logger), cfg.Sentiment)

	// Transport
	health := rest.NewHealthHandler(pool, BuildVersion())
	if feed.health != nil {
		health.WithComponent("changefeed", feed.health)
	}

	h := handlers{
		health:   health,
		auth:     rest.NewAuthHandler(authService, logger),
		me:       rest.NewMeHandler(userService, logger),
		invite:   rest.NewInviteHandler(inviteService, logger),
		journal:  rest.NewJournalHandler(journalService, logger),
		partner:  rest.NewPartnerHandler(sharingService, rest.SharingViews(sharingService), cfg.Server.StreamHeartbeat, logger),
		analysis: rest.NewAnalysisHandler(analysisService, logger),
	}

	limiter := middleware.NewRateLimiter(5 * time.Minute)

	return &application{
		cfg:     cfg,
		log:     logger,
		pool:    pool,
		feed:    feed,
		limiter: limiter,
		handler: newRouter(h, authService, m, limiter, cfg, logger),
	}, nil
}

// identityVerifiers returns a verifier for every configured provider.
func identityVerifiers(cfg config.AuthConfig, logger *slog.Logger) authsvc.Verifiers {
	verifiers := authsvc.Verifiers{}
	if cfg.IsProviderAllowed("google") {
		verifiers["google"] = google.NewVerifier(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI, logger)
	}
	if cfg.IsProviderAllowed("dev") {
		logger.Warn("dev login enabled; any email address signs in without verification")
		verifiers["dev"] = devidentity.NewVerifier(logger)
	}
	return verifiers
}

type analyzer interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisReport, error)
}

func sentimentClient(cfg config.SentimentConfig, logger *slog.Logger) analyzer {
	if cfg.URL == "" {
		logger.Warn("sentiment analysis not configured")
		return sentiment.NewStub()
	}
	return sentiment.NewClient(cfg.URL, cfg.Timeout, logger)
}

// serve runs the change feed listener and the HTTP server until ctx is
// cancelled or either of them fails, then shuts the server down gracefully.
func (a *application) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.feed.Run(gctx)
	})

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (a *application) close() {
	a.limiter.Stop()
	if err := a.feed.close(); err != nil {
		a.log.Warn("close change feed", slog.String("error", err.Error()))
	}
	a.pool.Close()
}
