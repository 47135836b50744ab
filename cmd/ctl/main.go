// Package main is the entry point for the tablenavi administration CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"tablenavi/internal/app"
	"tablenavi/internal/config"
	internaldb "tablenavi/internal/db"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tablenavi-ctl",
		Short:         "TableNavi administration tool",
		Long:          "Operational commands for the TableNavi restaurant directory: migrations, seeding, and admin accounts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("db", "", "path to the SQLite database (defaults to DB_PATH)")
	rootCmd.PersistentFlags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newCreateAdminCmd())
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		cfg.DBPath = path
	}
	return cfg, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			writeDB, _, err := internaldb.OpenSQLitePair(cfg.DBPath, 1)
			if err != nil {
				return err
			}
			defer writeDB.Close()
			if err := internaldb.RunMigrations(writeDB); err != nil {
				return err
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled categories, holidays, company profile, and terms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.SeedOnStartup = true
			writeDB, readDB, err := internaldb.OpenSQLitePair(cfg.DBPath, 1)
			if err != nil {
				return err
			}
			defer writeDB.Close()
			defer readDB.Close()
			if err := internaldb.RunMigrations(writeDB); err != nil {
				return err
			}
			if _, err := app.New(cmd.Context(), app.Deps{
				Cfg:     cfg,
				WriteDB: writeDB,
				ReadDB:  readDB,
				Logger:  slog.Default(),
			}); err != nil {
				return err
			}
			fmt.Println("seed data loaded")
			return nil
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if email == "" {
				return fmt.Errorf("--email is required")
			}
			if password == "" {
				password, err = promptPassword()
				if err != nil {
					return err
				}
			}

			writeDB, readDB, err := internaldb.OpenSQLitePair(cfg.DBPath, 1)
			if err != nil {
				return err
			}
			defer writeDB.Close()
			defer readDB.Close()
			if err := internaldb.RunMigrations(writeDB); err != nil {
				return err
			}

			cfg.SeedOnStartup = false
			application, err := app.New(cmd.Context(), app.Deps{
				Cfg:     cfg,
				WriteDB: writeDB,
				ReadDB:  readDB,
				Logger:  slog.Default(),
			})
			if err != nil {
				return err
			}

			admin, err := application.Services.Accounts.CreateAdmin(context.Background(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("created admin %s (id %d)\n", admin.Email, admin.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted)")
	return cmd
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}
