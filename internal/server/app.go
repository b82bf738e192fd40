// Package server wires configuration, storage, services and transports
// together and runs the HTTP and gRPC servers until a shutdown signal.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/archive"
	"github.com/dmitrijs2005/waterbill/internal/server/auth"
	"github.com/dmitrijs2005/waterbill/internal/server/config"
	"github.com/dmitrijs2005/waterbill/internal/server/mailer"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/waterbill/internal/server/services"

	gs "github.com/dmitrijs2005/waterbill/internal/server/grpc"
	hs "github.com/dmitrijs2005/waterbill/internal/server/http"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	services *services.Services
	tokens   *auth.TokenAuthority
}

// openRepositories is replaced in tests.
var openRepositories = repomanager.Open

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(logging.Options{Driver: c.LogDriver, Format: c.LogFormat, Level: c.LogLevel}, os.Stdout)
	if err != nil {
		return nil, err
	}

	repos, err := openRepositories(ctx, c.DatabaseDSN, c.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close(ctx)
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	tokens := auth.NewTokenAuthority([]byte(c.JWTSecret), c.JWTIssuer, c.JWTAudience, c.AccessTokenValidity)

	deps := services.Deps{
		Hasher:              auth.NewBcryptHasher(),
		Tokens:              tokens,
		Seed:                services.AdminSeed{Email: c.AdminEmail, Password: c.AdminPassword, Name: c.AdminName},
		Transport:           newTransport(c, logger),
		ReminderConcurrency: c.ReminderConcurrency,
	}
	if c.S3Bucket != "" {
		a, err := archive.New(ctx, archive.Config{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			PresignTTL:   c.S3PresignTTL,
		})
		if err != nil {
			_ = repos.Close(ctx)
			return nil, fmt.Errorf("archive init error: %w", err)
		}
		deps.Archive = a
	}

	svc := services.New(repos, deps, logger)
	if err := svc.Users.SeedAdmin(ctx); err != nil {
		logger.Error(ctx, "admin seed failed", "error", err)
	}

	return &App{config: c, logger: logger, repos: repos, services: svc, tokens: tokens}, nil
}

func newTransport(c *config.Config, logger logging.Logger) mailer.Transport {
	if c.SMTPHost == "" {
		logger.Warn(context.Background(), "SMTP host not configured, reminders will only be logged")
		return mailer.NewLogTransport(logger)
	}
	return mailer.NewSMTPTransport(mailer.SMTPConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		Username: c.SMTPUsername,
		Password: c.SMTPPassword,
		From:     c.SMTPFrom,
		FromName: c.SMTPFromName,
		TLS:      c.SMTPTLS,
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.services, app.tokens)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := hs.NewHTTPServer(app.config.HTTPAddr, app.config.ShutdownTimeout, app.logger, app.services, app.tokens)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", err)
		cancelFunc()
	}
}

// Run blocks until a signal arrives, ctx is cancelled or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if err := app.repos.Close(closeCtx); err != nil {
		app.logger.Error(closeCtx, "closing storage failed", "error", err)
	}
	app.logger.Info(closeCtx, "App stopped")
}
