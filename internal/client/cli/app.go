package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/config"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/services"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/tokenstore"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/filex"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

var ErrUnknownBackend = errors.New("unknown token store backend")

type App struct {
	cfg *config.Config
	log logging.Logger
	in  *bufio.Reader
	out io.Writer

	closers []func() error
	tokens  tokenstore.Store

	status       *services.Status
	auth         *services.AuthService
	resumes      *services.ResumeService
	applications *services.ApplicationService
	billing      *services.BillingService
	analytics    *services.AnalyticsService
	profile      *services.ProfileService
	generation   *services.GenerationService
}

// NewApp opens the token store selected by cfg and wires the API client and
// state containers around it. Close releases the store.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	tokens, closeStore, err := openTokenStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "error opening token store", "backend", cfg.TokenBackend, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(cfg.APIBaseURL, tokens,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(log),
		client.WithRateLimit(cfg.RequestsPerSecond),
	)

	a := newApp(cfg, log, api, tokens, os.Stdin, os.Stdout)
	a.closers = append(a.closers, closeStore)
	return a, nil
}

func newApp(cfg *config.Config, log logging.Logger, api client.Client, tokens tokenstore.Store, in io.Reader, out io.Writer) *App {
	st := services.NewStatus()
	auth := services.NewAuthService(api, tokens, st, log)

	return &App{
		cfg:          cfg,
		log:          log,
		in:           bufio.NewReader(in),
		out:          out,
		tokens:       tokens,
		status:       st,
		auth:         auth,
		resumes:      services.NewResumeService(api, st, log),
		applications: services.NewApplicationService(api, st, log),
		billing:      services.NewBillingService(api, st, log),
		analytics:    services.NewAnalyticsService(api, st, log),
		profile:      services.NewProfileService(api, st, log, auth),
		generation:   services.NewGenerationService(api, st, log, auth),
	}
}

func openTokenStore(ctx context.Context, cfg *config.Config) (tokenstore.Store, func() error, error) {
	switch cfg.TokenBackend {
	case config.BackendMemory:
		return tokenstore.NewMemoryStore(), func() error { return nil }, nil

	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return tokenstore.NewRedisStore(rdb, cfg.TokenStorageKey), rdb.Close, nil

	case config.BackendSQLite, "":
		if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
			return nil, nil, err
		}
		db, err := client.InitDatabase(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("init database: %w", err)
		}
		return tokenstore.NewSQLiteStore(db, cfg.TokenStorageKey), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.TokenBackend)
	}
}

// Run restores the previous session, starts the token refresher and serves
// the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.println(titleStyle.Render("CareerPilot CLI") + " (type 'help' for commands)")

	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if s := a.auth.Snapshot(); s.IsAuthenticated() && s.User != nil {
		a.success(fmt.Sprintf("Welcome back, %s!", displayName(s.User.FullName, s.User.Email)))
	}

	go a.auth.StartRefresher(ctx, a.cfg.RefreshInterval, a.cfg.RefreshWindow)

	runREPL(ctx, a.in, a.out, a.commands(), a.auth.IsAuthenticated, a.prompt)
	return nil
}

// Close releases the token store.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// prompt renders the REPL prompt with the session state. A "!" marks that
// the last API call failed.
func (a *App) prompt() string {
	mark := ""
	if a.status.Err() != nil {
		mark = errorStyle.Render("!")
	}

	s := a.auth.Snapshot()
	var status string
	switch s.State {
	case services.Authenticated:
		if s.User != nil {
			status = s.User.Email
		}
	case services.PendingTwoFA:
		status = "awaiting 2FA code"
	case services.PendingEmailVerification:
		status = "verify " + s.PendingEmail
	}
	if status == "" {
		return "careerpilot" + mark + "> "
	}
	return fmt.Sprintf("careerpilot (%s)%s> ", mutedStyle.Render(status), mark)
}

// clearContainers drops every cached resource, e.g. after logout.
func (a *App) clearContainers() {
	a.resumes.Clear()
	a.applications.Clear()
	a.billing.Clear()
	a.analytics.Clear()
	a.profile.Clear()
}
