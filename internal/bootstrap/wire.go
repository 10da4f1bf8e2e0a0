package bootstrap

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/application/account"
	"github.com/Tzuyuchae/ansonzaneproject/internal/application/engagement"
	"github.com/Tzuyuchae/ansonzaneproject/internal/application/event"
	"github.com/Tzuyuchae/ansonzaneproject/internal/config"
	"github.com/Tzuyuchae/ansonzaneproject/internal/infrastructure/db/sqlite"
	"github.com/Tzuyuchae/ansonzaneproject/internal/infrastructure/email"
	"github.com/Tzuyuchae/ansonzaneproject/internal/infrastructure/security"
	"github.com/Tzuyuchae/ansonzaneproject/internal/logger"
	http_handlers "github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/handlers"
	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	OpenDB func(dsn string) (*sql.DB, error)

	NewNotifier func(cfg *config.Config) account.Notifier

	NewRouter func(router.Deps) (http.Handler, error)
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	// 2) repos
	accountRepo := sqlite.NewAccountRepo(db)
	eventRepo := sqlite.NewEventRepo(db)
	engagementRepo := sqlite.NewEngagementRepo(db)

	// 3) security + notifier
	hasher := security.NewBcryptHasher(0)
	codes := security.NewCodeGeneratorAt(cfg.CodeTTL, time.Now)
	notifier := deps.NewNotifier(cfg)

	// 4) services
	accountSvc := account.NewService(accountRepo, hasher, codes, notifier, account.Config{
		NotifyTimeout: cfg.NotifyTimeout,
	})
	eventSvc := event.NewService(eventRepo, accountRepo)
	engagementSvc := engagement.NewService(engagementRepo)

	// 5) handlers
	accountsH := http_handlers.NewAccountsHandler(accountSvc)
	eventsH := http_handlers.NewEventsHandler(eventSvc, engagementSvc)
	healthH := http_handlers.NewHealthHandler(db)

	// 6) router
	mux, err := deps.NewRouter(router.Deps{
		Health:   healthH,
		Accounts: accountsH,
		Events:   eventsH,

		RateLimitEnabled: cfg.RLEnabled,
		RateLimit:        cfg.RLLimit,
		RateLimitWindow:  cfg.RLWindow,

		CORSEnabled:        cfg.CORSEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,

		MaxBodyBytes: cfg.MaxBodyBytes,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 7) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

func runCleanup(fns []func()) {
	// reverse order, like deferred teardown
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		OpenDB:     sqlite.Open,
		NewNotifier: func(cfg *config.Config) account.Notifier {
			smtpCfg := email.SMTPConfig{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				Username: cfg.SMTPUsername,
				Password: cfg.SMTPPassword,
				From:     cfg.SMTPFrom,
				Timeout:  cfg.NotifyTimeout,
				Insecure: cfg.SMTPInsecure,
			}
			if smtpCfg.Configured() {
				return email.NewSMTPSender(smtpCfg, logger.Logger)
			}
			logger.Logger.Warn().Msg("smtp not configured; verification codes will be logged only")
			return email.NewLogSender(logger.Logger)
		},
		NewRouter: router.New,
	}
}
