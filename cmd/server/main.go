package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brainsimp-server/internal/config"
	"brainsimp-server/internal/core/auth"
	"brainsimp-server/internal/logger"
	"brainsimp-server/internal/storage/postgres"
	"brainsimp-server/internal/transport/rest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "" {
		panic("FATAL: JWT_SECRET is mandatory for Server!")
	}

	dbPool, err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxConns, log)
	if err != nil {
		log.Error("failed to init DB", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := postgres.NewUserRepository(dbPool)

	authService := auth.NewService(userRepo, log, cfg.JWTSecret, cfg.JWTExpiry)

	authHandler := rest.NewAuthHandler(authService, log)
	profileHandler := rest.NewProfileHandler(authService, log)

	router := rest.NewRouter(cfg, &rest.RouterDeps{
		Auth:    authHandler,
		Profile: profileHandler,
		Log:     log,
	})

	srv := rest.NewServer(router, cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http: starting server", "address", cfg.Address)
		errCh <- srv.ListenAndServe()
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http: server shutdown error", "error", err)
		}

	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("http: server error", "error", err)
		}
	}

	log.Info("server stopped")
}
