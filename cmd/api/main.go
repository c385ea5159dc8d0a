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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/aprilandbutter/storefront/internal/config"
	"github.com/aprilandbutter/storefront/internal/entity"
	"github.com/aprilandbutter/storefront/internal/infra/http/handlers"
	"github.com/aprilandbutter/storefront/internal/infra/http/middleware"
	"github.com/aprilandbutter/storefront/internal/infra/mail"
	"github.com/aprilandbutter/storefront/internal/infra/queue"
	"github.com/aprilandbutter/storefront/internal/infra/worker"
	"github.com/aprilandbutter/storefront/internal/usecase"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if level == "debug" {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// 1. Relay for validated contact messages
	var rabbit *queue.RabbitMQ
	var sender usecase.ContactSender

	switch cfg.ContactRelay {
	case config.RelaySMTP:
		sender = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.ContactInbox)

	case config.RelayRabbitMQ:
		r, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return err
		}
		defer r.Close()
		rabbit = r

		sender = queue.NewProducer(rabbit.Ch)

		mailer := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.ContactInbox)
		w := queue.NewWorker(rabbit.Ch, mailer, logger.Named("contact-worker"))
		g.Go(func() error { return w.Start(ctx, queue.QueueName) })

	case config.RelaySimulated:
		sender = usecase.NewSimulatedSender(cfg.SubmitDelay, logger.Named("relay"))

	default:
		return fmt.Errorf("unknown contact relay %q", cfg.ContactRelay)
	}

	// 2. Use cases
	contactUC := usecase.NewContactFormUseCase(sender, logger.Named("contact"))
	overlayUC := usecase.NewOverlayUseCase(entity.DefaultCatalog(), logger.Named("overlay"))

	// 3. Background workers
	sweeper := worker.NewSessionSweeper(cfg.SessionIdleTimeout, cfg.SessionSweepInterval, logger.Named("sweeper"))
	sweeper.Register("contact_forms", contactUC.Forms)
	sweeper.Register("search_overlays", overlayUC.Sessions)
	g.Go(func() error { return sweeper.Start(ctx) })

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	g.Go(func() error { return limiter.Cleanup(ctx, 10*time.Minute) })

	// 4. Router
	var health handlers.ConnectionChecker
	if rabbit != nil {
		health = rabbit
	}
	router := handlers.NewRouter(handlers.RouterDeps{
		Contact:        handlers.NewContactHandler(contactUC, logger.Named("http")),
		Overlay:        handlers.NewOverlayHandler(overlayUC),
		Pages:          handlers.NewPageHandler(),
		Health:         handlers.NewHealthHandler(cfg.ContactRelay, health, contactUC.Forms, overlayUC.Sessions),
		RateLimiter:    limiter,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AccessLog:      true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		logger.Info("storefront API listening",
			zap.String("addr", srv.Addr),
			zap.String("relay", cfg.ContactRelay),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
