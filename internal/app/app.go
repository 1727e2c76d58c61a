// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres"
	claimrepo "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres/claim"
	convrepo "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres/conversation"
	itemrepo "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres/item"
	msgrepo "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres/message"
	userrepo "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres/user"
	jwtauth "github.com/Michael3682/track-n-find-sub000/internal/auth"
	"github.com/Michael3682/track-n-find-sub000/internal/config"
	"github.com/Michael3682/track-n-find-sub000/internal/realtime"
	authsvc "github.com/Michael3682/track-n-find-sub000/internal/service/auth"
	convsvc "github.com/Michael3682/track-n-find-sub000/internal/service/conversation"
	itemsvc "github.com/Michael3682/track-n-find-sub000/internal/service/item"
	msgsvc "github.com/Michael3682/track-n-find-sub000/internal/service/messaging"
	reportsvc "github.com/Michael3682/track-n-find-sub000/internal/service/report"
	"github.com/Michael3682/track-n-find-sub000/internal/transport/middleware"
	"github.com/Michael3682/track-n-find-sub000/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, applies
// migrations, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := runMigrations(ctx, cfg.Database.DSN, logger); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Repositories.
	users := userrepo.New(pool)
	items := itemrepo.New(pool)
	conversations := convrepo.New(pool)
	messages := msgrepo.New(pool)
	claims := claimrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Realtime hub. The messaging service pushes through it and the socket
	// clients send through the messaging service, so the sender is bound
	// after both exist.
	hub := realtime.NewHub(realtime.NewMemoryConnStore(), logger, realtime.Options{
		SendBuffer:       cfg.Chat.SendBuffer,
		WriteTimeout:     cfg.Chat.WriteTimeout,
		PongTimeout:      cfg.Chat.PongTimeout,
		PingInterval:     cfg.Chat.PingInterval,
		ReadLimit:        cfg.Chat.ReadLimit,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	})

	// Services.
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	itemService := itemsvc.NewService(logger, items)
	conversationService := convsvc.NewService(logger, conversations, items, users, messages, cfg.Chat)
	messagingService := msgsvc.NewService(logger, messages, conversations, tx, hub, cfg.Chat)
	reportService := reportsvc.NewService(logger, claims, items, conversations, users, tx)

	hub.BindSender(messagingService)

	// Transport.
	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Items:     rest.NewItemHandler(itemService, logger),
		Chat:      rest.NewChatHandler(conversationService, messagingService, logger),
		Report:    rest.NewReportHandler(reportService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		WS:        rest.NewWSHandler(hub, authService, logger),
		AuthLimit: limiter.Limit(cfg.Server.AuthRatePerMin),
	},
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
