package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"oyunfor-gateway/config"
	pgStorage "oyunfor-gateway/internal/adapter/storage/postgres"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/internal/service"
	"oyunfor-gateway/pkg/logger"

	"github.com/spf13/cobra"
)

// system is what the operator commands need from the environment.
// Tests replace it to avoid a live database.
type system struct {
	loadConfig func(path string) (*config.Config, error)
	openAdmins func(ctx context.Context, cfg *config.Config) (ports.AdminRepository, func(), error)
	migrate    func(cfg *config.Config) error
}

func defaultSystem() system {
	return system{
		loadConfig: config.Load,
		openAdmins: func(ctx context.Context, cfg *config.Config) (ports.AdminRepository, func(), error) {
			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
			pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
			if err != nil {
				return nil, nil, err
			}
			return pgStorage.NewAdminRepo(pool), pool.Close, nil
		},
		migrate: func(cfg *config.Config) error {
			return pgStorage.Migrate(cfg.Database, logger.New(cfg.Log.Level, cfg.Log.Pretty))
		},
	}
}

func createRootCommand(sys system, out io.Writer) *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "oyunforctl",
		Short:         "Operator commands for the Oyunfor gateway.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")

	root.AddCommand(createTokenCommand(sys, &configPath))
	root.AddCommand(createMigrateCommand(sys, &configPath))
	return root
}

func createTokenCommand(sys system, configPath *string) *cobra.Command {
	var (
		username string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mints a staff bearer token for the admin API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sys.loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if ttl <= 0 {
				ttl = cfg.Admin.SessionTTL
			}

			admins, closeFn, err := sys.openAdmins(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer closeFn()

			admin, err := admins.EnsureByUsername(cmd.Context(), username)
			if err != nil {
				return fmt.Errorf("ensuring admin %q: %w", username, err)
			}

			tokens := service.NewJWTTokenService(cfg.Admin.JWTSecret, ttl, cfg.Admin.JWTIssuer)
			token, expiresAt, err := tokens.Generate(admin.ID, admin.Username)
			if err != nil {
				return err
			}
			cmd.Printf("admin:   %s (%s)\n", admin.Username, admin.ID)
			cmd.Printf("expires: %s\n", expiresAt.UTC().Format(time.RFC3339))
			cmd.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "admin", "staff username the token is minted for")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to admin.session_ttl)")
	return cmd
}

func createMigrateCommand(sys system, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applies pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sys.loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := sys.migrate(cfg); err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return nil
		},
	}
}
