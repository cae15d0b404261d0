package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "progest/docs"
	"progest/internal/adapters/auth/sessions"
	pg "progest/internal/adapters/storage/postgres"
	"progest/internal/platform/config"
	"progest/internal/platform/logger"
	"progest/internal/platform/metrics"
	"progest/internal/ports/auth"
	"progest/internal/router"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "progest"
)

// @title ProGest API
// @version 0.1.0
// @description Registro de owners, fazendas, tipos de animal y lotes, con dashboard analítico.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "ProGest HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (TOML)")

	cmd.AddCommand(useraddCmd(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// bootstrap carga config y logger, y abre Postgres si hay DSN.
func bootstrap(configPath string) (*config.Config, logger.Logger, *sql.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	if cfg.Database.DSN == "" {
		log.Warn("database.dsn not set, using in-memory store", nil)
		return cfg, log, nil, nil
	}

	db, err := pg.Open(cfg.Database.DSN, pg.Options{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pg.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	return cfg, log, db, nil
}

func serve(ctx context.Context, configPath string) error {
	cfg, log, db, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if db != nil {
		defer db.Close()
	}

	m := metrics.New()

	var store auth.SessionStore
	if cfg.Redis.Addr != "" {
		rs, err := sessions.NewRedisStore(ctx, sessions.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rs.Close()
		store = rs
	} else {
		store = sessions.NewMemoryStore(sessions.WithActiveGauge(m.SetActiveSessions))
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			DB:           db,
			Sessions:     store,
			Logger:       log,
			Metrics:      m,
			SessionTTL:   cfg.Session.TTL,
			BcryptCost:   cfg.Bcrypt.Cost,
			SecureCookie: cfg.Session.CookieSecure,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.App.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
