package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/kidventure/partnerhub/internal/partner/http"
	"github.com/kidventure/partnerhub/internal/partner/notify"
	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/internal/partner/store/drivers/postgres"
	"github.com/kidventure/partnerhub/internal/partner/store/drivers/sqlite"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/jwtx"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application wires the partner hub: store, signing keys, services and the
// HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	keyManager *jwtx.KeyManager
	mailer     notify.Sender

	tokenService        *service.TokenService
	invitationService   *service.InvitationService
	passwordService     *service.PasswordService
	checkinService      *service.CheckinService
	attendanceService   *service.AttendanceService
	sessionService      *service.SessionService
	organizationService *service.OrganizationService
	financeService      *service.FinanceService
	analyticsService    *service.AnalyticsService
	mfaService          *service.MFAService
	platformService     *service.PlatformService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "partner-hub",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)
	httpx.LoadRateLimitsFromEnv()

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	km, err := InitKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keyManager = km

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed HTTP handler without starting a listener.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the server and blocks until it fails or a shutdown signal
// arrives.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("partner hub starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down partner hub...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("partner hub stopped")
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case "postgres":
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL, postgres.Options{})
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", app.cfg.DatabaseDriver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initMailer() {
	if app.cfg.ResendAPIKey == "" {
		app.logger.Warn("RESEND_API_KEY not set, invitation emails will only be logged")
		app.mailer = notify.LogSender{}
		return
	}
	app.mailer = notify.NewResendSender(app.cfg.ResendAPIKey, app.cfg.MailFrom)
}

func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		KeyManager: app.keyManager,
		Store:      app.db,
		Issuer:     app.cfg.Issuer,
		Audience:   app.cfg.Audience,
		AccessTTL:  app.cfg.AccessTTL,
		RefreshTTL: app.cfg.RefreshTTL,
	}
	app.invitationService = &service.InvitationService{
		Store: app.db,
		TTL:   app.cfg.InvitationTTL,
	}
	app.passwordService = &service.PasswordService{
		Store:        app.db,
		TTL:          app.cfg.PasswordResetTTL,
		Mailer:       app.mailer,
		DashboardURL: app.cfg.DashboardURL,
	}
	app.checkinService = &service.CheckinService{
		Store: app.db,
		Early: app.cfg.CheckinEarly,
		Late:  app.cfg.CheckinLate,
	}
	app.attendanceService = &service.AttendanceService{Store: app.db}
	app.sessionService = &service.SessionService{Store: app.db}
	app.organizationService = &service.OrganizationService{
		Store:        app.db,
		Invitations:  app.invitationService,
		Mailer:       app.mailer,
		DashboardURL: app.cfg.DashboardURL,
	}
	app.financeService = &service.FinanceService{Store: app.db}
	app.analyticsService = &service.AnalyticsService{Store: app.db}
	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: "KidVenture Pass",
	}
	app.platformService = &service.PlatformService{
		Store:       app.db,
		Token:       app.cfg.PlatformToken,
		Invitations: app.invitationService,
	}
	if !app.platformService.Enabled() {
		app.logger.Info("PLATFORM_TOKEN not set, platform API disabled")
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.CORSAllowedOrigins,
	)

	router.TokenService = app.tokenService
	router.InvitationService = app.invitationService
	router.PasswordService = app.passwordService
	router.CheckinService = app.checkinService
	router.AttendanceService = app.attendanceService
	router.SessionService = app.sessionService
	router.OrganizationService = app.organizationService
	router.FinanceService = app.financeService
	router.AnalyticsService = app.analyticsService
	router.MFAService = app.mfaService
	router.PlatformService = app.platformService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
