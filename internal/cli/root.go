// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cli implements the blog command line: the HTTP server plus the
// maintenance commands that share its configuration.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/app"
	"github.com/olegiv/ocms-blog/internal/config"
	"github.com/olegiv/ocms-blog/internal/version"
)

type cli struct {
	info    version.Info
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the "blog" command tree. Running it without a
// subcommand starts the server.
func NewRootCommand(info version.Info) *cobra.Command {
	c := &cli{info: info}

	root := &cobra.Command{
		Use:   "blog",
		Short: "A single-author blog",
		Long: `blog serves a single-author blog: a list of posts, a page per post and
forms to create, edit and delete them.

Configuration is read from BLOG_* environment variables, optionally
loaded from an env file.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runServe,
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "env file to load before reading the environment")

	root.AddCommand(
		c.serveCommand(),
		c.migrateCommand(),
		c.importCommand(),
		c.exportCommand(),
		c.versionCommand(),
	)
	return root
}

// Execute runs the root command with the given build information.
func Execute(ctx context.Context, info version.Info) error {
	return NewRootCommand(info).ExecuteContext(ctx)
}

// setup loads configuration and installs the logger for every command
// except help and version.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	// The env file is optional; real environment variables win over it.
	if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.cfg = cfg

	// Logs go to stderr so "blog export" can stream YAML on stdout.
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(c.logger)

	for _, warning := range cfg.Warnings() {
		c.logger.Warn(warning)
	}
	return nil
}

// openApp builds the application and brings the schema up to date.
func (c *cli) openApp(ctx context.Context) (*app.App, error) {
	a, err := app.New(c.cfg, c.logger)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("running database migrations", "driver", c.cfg.DBDriver)
	if err := a.Migrate(ctx); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return a, nil
}

func (c *cli) closeApp(a *app.App) {
	if err := a.Close(); err != nil {
		c.logger.Error("error closing database connection", "error", err)
	}
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.info.String())
		},
	}
}
