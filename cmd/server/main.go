// Command notehub-server starts the NoteHub HTTP API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/avm-dev/notehub/internal/config"
	"github.com/avm-dev/notehub/internal/mail"
	"github.com/avm-dev/notehub/internal/migrate"
	"github.com/avm-dev/notehub/internal/otp"
	"github.com/avm-dev/notehub/internal/repository/postgres"
	httpserver "github.com/avm-dev/notehub/internal/server/http"
	"github.com/avm-dev/notehub/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the HTTP server.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	db, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	noteRepo := postgres.NewNoteRepo(db)

	// Mail dispatcher: SMTP relay in production, log mailer when unconfigured.
	var mailer mail.Mailer
	if cfg.SMTP.Host != "" {
		mailer, err = mail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
		if err != nil {
			logger.Fatal("smtp mailer", zap.Error(err))
		}
	} else {
		logger.Warn("SMTP_HOST not set, reset codes go to the log")
		mailer = &mail.LogMailer{Log: logger}
	}

	// Services
	otpStore := otp.NewMemoryStore()
	authSvc := service.NewAuthService(userRepo, otpStore, mailer, []byte(cfg.JWT.Secret), cfg.JWT.AccessTTL, cfg.OTP.TTL)
	noteSvc := service.NewNoteService(noteRepo)

	app := httpserver.New(authSvc, noteSvc, []byte(cfg.JWT.Secret), logger)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
