package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cecoladevelopment/site-backend/internal/api"
	"github.com/cecoladevelopment/site-backend/internal/config"
	"github.com/cecoladevelopment/site-backend/internal/contact"
	"github.com/cecoladevelopment/site-backend/internal/generator"
	"github.com/cecoladevelopment/site-backend/internal/inquiry"
	"github.com/cecoladevelopment/site-backend/internal/logger"
	"github.com/cecoladevelopment/site-backend/internal/mailer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "site-backend: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	zapLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	if !cfg.App.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// A missing credential is not fatal: the inquiry endpoint answers 500
	// until the service is reconfigured.
	gen, err := generator.New(ctx, cfg.AI)
	switch {
	case errors.Is(err, generator.ErrMissingCredential):
		zapLog.Warn("generation credential missing, inquiries will fail", zap.String("provider", cfg.AI.Provider))
	case err != nil:
		return fmt.Errorf("generator init failed: %w", err)
	default:
		defer gen.Close()
		zapLog.Info("generator ready", zap.String("provider", gen.Name()))
	}

	var transport mailer.Transport
	if cfg.MailConfigured() {
		transport, err = mailer.New(ctx, cfg.Mail)
		if err != nil {
			return fmt.Errorf("mail transport init failed: %w", err)
		}
		zapLog.Info("mail transport ready", zap.String("transport", transport.Name()))
	} else {
		zapLog.Warn("mail transport not configured, contact submissions will fail")
	}

	handler := api.NewHandler(
		inquiry.NewResponder(gen, log),
		contact.NewRelay(transport, cfg.Contact, log),
		cfg,
		log,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           api.NewRouter(handler, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLog.Info("site backend starting",
			zap.String("port", cfg.Server.Port),
			zap.String("environment", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sigCh:
	}

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	zapLog.Info("Site backend stopped gracefully")
	return nil
}
