package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/logger"
	"github.com/mgfilms/site-service/internal/media"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/storage/sqlstore"
	"github.com/mgfilms/site-service/internal/types/admins"
	"github.com/mgfilms/site-service/internal/utils/password"
)

// setupStore is the part of the SQL store the commands use.
type setupStore interface {
	CreateTables(ctx context.Context) error
	SeedAdmin(ctx context.Context, admin config.Admin) (bool, error)
	SeedSEO(ctx context.Context) (int, error)
	GetAdminByEmail(ctx context.Context, email string) (admins.Admin, error)
	CreateAdmin(ctx context.Context, email, passwordHash, name string) (int64, error)
	Close() error
}

type openFunc func(ctx context.Context, cfg config.Database) (setupStore, error)

func openSQLStore(ctx context.Context, cfg config.Database) (setupStore, error) {
	s, err := sqlstore.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

type app struct {
	open       openFunc
	configPath string
	cfg        *config.Config
}

func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	logger.InitWriter(cmd.ErrOrStderr(), cfg.Log.Level, "text")
	return nil
}

// withStore opens the database, runs fn and closes it again.
func (a *app) withStore(cmd *cobra.Command, fn func(ctx context.Context, s setupStore) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := a.open(ctx, a.cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()
	return fn(ctx, s)
}

func newRootCmd(open openFunc) *cobra.Command {
	a := &app{open: open}

	root := &cobra.Command{
		Use:               "site-setup",
		Short:             "Database setup for the MG Films site service",
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: environment only)")

	root.AddCommand(a.migrateCmd(), a.seedCmd(), a.createAdminCmd(), resolveCmd())
	return root
}

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s setupStore) error {
				if err := s.CreateTables(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Tables ready.")
				return nil
			})
		},
	}
}

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create tables, the default admin and default SEO rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, s setupStore) error {
				if err := s.CreateTables(ctx); err != nil {
					return err
				}
				created, err := s.SeedAdmin(ctx, a.cfg.Admin)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(cmd.OutOrStdout(), "Default admin created: %s\n", a.cfg.Admin.Email)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Admins already exist, skipped.")
				}
				n, err := s.SeedSEO(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "SEO pages inserted: %d\n", n)
				return nil
			})
		},
	}
}

func (a *app) createAdminCmd() *cobra.Command {
	var req admins.CreateRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Add an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Email = strings.TrimSpace(req.Email)
			if err := validator.New().Struct(req); err != nil {
				return fmt.Errorf("invalid admin: %w", err)
			}

			hash, err := password.HashPassword(req.Password)
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, s setupStore) error {
				if _, err := s.GetAdminByEmail(ctx, req.Email); err == nil {
					return fmt.Errorf("admin %s already exists", req.Email)
				} else if !errors.Is(err, storage.ErrNotFound) {
					return err
				}

				id, err := s.CreateAdmin(ctx, req.Email, hash, req.Name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %s created with id %d\n", req.Email, id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Admin password (min 8 characters)")
	cmd.Flags().StringVar(&req.Name, "name", "Admin", "Display name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

// resolveCmd prints the descriptor for a reference without touching the
// database, which helps when checking what the site will embed.
func resolveCmd() *cobra.Command {
	var hint string

	cmd := &cobra.Command{
		Use:   "resolve <url-or-id>",
		Short: "Show how a media reference will be embedded",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			d := media.Resolve(raw, media.Hint(hint), media.DefaultYouTubeID)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		},
	}
	cmd.Flags().StringVar(&hint, "type", "", "media_type hint (image, video, youtube, gdrive, local)")
	return cmd
}
