// console serves the ALC Textiles administration console: a server-rendered
// web front end over the company's ERP REST API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iamselvaperumal/alc-console/internal/core/ports"
	"github.com/iamselvaperumal/alc-console/internal/core/service"
	"github.com/iamselvaperumal/alc-console/internal/infrastructure/backend"
	"github.com/iamselvaperumal/alc-console/internal/infrastructure/cache"
	"github.com/iamselvaperumal/alc-console/internal/infrastructure/config"
	"github.com/iamselvaperumal/alc-console/internal/ui"
	"github.com/iamselvaperumal/alc-console/pkg/logger"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "console",
		Short:   "ALC Textiles administration console",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the console HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	// Profile cache: Redis when configured, in-process otherwise.
	var (
		profiles   ports.ProfileCache
		redisProbe ui.Pinger
	)
	if cfg.Redis.Addr != "" {
		rdb, err := cache.Connect(ctx, cache.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		redisCache := cache.NewRedisProfileCache(rdb, log)
		profiles = redisCache
		redisProbe = redisCache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("profile cache backed by redis")
	} else {
		profiles = cache.NewMemoryProfileCache()
		log.Info().Msg("profile cache in-process")
	}

	// A 401 on any data call means the backend stopped honouring the
	// credential; drop the cached profile so the next resolve re-checks.
	erp := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log,
		backend.WithUnauthorizedHook(func(ctx context.Context, path, token string) {
			log.Info().Str("path", path).Msg("credential rejected by backend")
			profiles.Delete(ctx, token)
		}),
	)

	sessions := service.NewSessionService(erp, profiles, cfg.Session.CacheTTL, log)
	front := ui.New(erp, sessions, ui.Config{
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
	}, log)

	health := ui.NewHealthHandler(map[string]ui.Pinger{
		"backend": erp,
		"redis":   redisProbe,
	})

	e := ui.NewRouter(front, health)

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
