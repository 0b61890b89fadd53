package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/bootstrap"
	"github.com/yigit/registrar/internal/seed"
	"github.com/yigit/registrar/internal/server"
)

const commandTimeout = 5 * time.Minute

func newRootCmd() *cobra.Command {
	var configPath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Pending migrations are applied before the server starts listening.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(configPath)
		},
	}

	root := &cobra.Command{
		Use:           "registrar",
		Short:         "Academic records admin backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serveCmd.RunE,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "path to the YAML configuration file")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context(), configPath)
		},
	}

	var students int
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert default colleges, programs and random students",
		Long: `Insert default colleges, programs and random students.

Rows that already exist are left untouched, so seeding can be repeated.

Examples:
  registrar seed
  registrar seed --students 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var override *int
			if cmd.Flags().Changed("students") {
				override = &students
			}
			return runSeed(cmd.Context(), configPath, override)
		},
	}
	seedCmd.Flags().IntVar(&students, "students", 0, "number of students to generate (default from config)")

	root.AddCommand(serveCmd, migrateCmd, seedCmd)
	return root
}

func runServe(configPath string) error {
	srv, err := server.NewServer(configPath)
	if err != nil {
		return err
	}
	return srv.Run()
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	pool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	return bootstrap.RunMigrations(ctx, pool, lgr)
}

func runSeed(ctx context.Context, configPath string, students *int) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	pool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	if err := bootstrap.RunMigrations(ctx, pool, lgr); err != nil {
		return err
	}

	opts := seed.Options{
		Students:      cfg.Seed.Students,
		RandomSeed:    cfg.Seed.RandomSeed,
		AdminUsername: cfg.Seed.AdminUsername,
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
		BcryptCost:    cfg.Security.BcryptCost,
	}
	if students != nil {
		opts.Students = *students
	}

	_, err = seed.Run(ctx, pool, opts, lgr)
	return err
}
