package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"MiniCatalog/internal/auth"
	"MiniCatalog/internal/catalog"
	"MiniCatalog/pkg/kit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := kit.LoadConfig(envFile)
		if err != nil {
			return err
		}
		return runServe(cmd.Context(), cfg)
	},
}

func runServe(ctx context.Context, cfg kit.Config) error {
	log := kit.NewLogger(serviceName, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	users := auth.NewMemStore()
	if cfg.AdminPasswordHash == "" {
		log.Warn("ADMIN_PASSWORD_HASH not set; catalog is read-only until a token is minted with `catalog token`")
	} else if _, err := users.Create(ctx, cfg.AdminUser, []byte(cfg.AdminPasswordHash), auth.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	jwt := auth.NewTokenMaker(cfg.JWTSecret, cfg.TokenTTL)

	s := &catalog.Server{
		Store: catalog.NewMemStore(catalog.NewService()),
		Log:   log,
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        serviceName,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		Auth:           &auth.Server{Log: log, Store: users, JWT: jwt, TrustProxy: cfg.TrustProxy},
		JWT:            jwt,
	})

	if err := kit.RunHTTPServer(ctx, ":"+cfg.Port, h, log); err != nil {
		log.Error("http server stopped", zap.Error(err))
		return err
	}
	return nil
}
