// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package app assembles the blog's dependencies into a single application
// context that is passed to the HTTP layer and CLI commands.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/ocms-blog/internal/config"
	"github.com/olegiv/ocms-blog/internal/pages"
	"github.com/olegiv/ocms-blog/internal/render"
	"github.com/olegiv/ocms-blog/internal/session"
	"github.com/olegiv/ocms-blog/internal/store"
	"github.com/olegiv/ocms-blog/web"
)

// App holds everything a request or command needs.
type App struct {
	Config   *config.Config
	Dialect  store.Dialect
	DB       *sql.DB
	Store    *store.Posts
	Renderer *render.Renderer
	Sessions *scs.SessionManager
	Pages    *pages.Library
	Logger   *slog.Logger

	static fs.FS
	now    func() time.Time
}

// Option customises App construction.
type Option func(*options)

type options struct {
	db  *sql.DB
	now func() time.Time
}

// WithDB uses an already opened database instead of opening BLOG_DB_DSN.
func WithDB(db *sql.DB) Option {
	return func(o *options) { o.db = db }
}

// WithClock overrides the clock used to date new posts.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New opens the database and builds the renderer, session manager and
// page library. It does not run migrations.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	dialect := store.Dialect(cfg.DBDriver)
	if !dialect.Valid() {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db := o.db
	if db == nil {
		var err error
		if db, err = openDB(dialect, cfg.DBDSN); err != nil {
			return nil, err
		}
	}

	a := &App{
		Config:  cfg,
		Dialect: dialect,
		DB:      db,
		Store:   store.NewPosts(db, dialect),
		Logger:  logger,
		now:     o.now,
	}

	a.Sessions = session.New(db, dialect, cfg.IsDevelopment())

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("getting templates fs: %w", err)
	}
	a.Renderer, err = render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: a.Sessions,
		SiteName:       cfg.SiteName,
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	a.static, err = fs.Sub(web.Static, "static")
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("getting static fs: %w", err)
	}

	a.Pages, err = pages.Load(web.Content, "content")
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("loading pages: %w", err)
	}

	return a, nil
}

// openDB opens the configured database, creating the parent directory of
// a SQLite file when needed.
func openDB(dialect store.Dialect, dsn string) (*sql.DB, error) {
	if dialect == store.SQLite && dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := store.Open(dialect, dsn, store.DefaultDBConfig())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// Migrate applies pending schema migrations.
func (a *App) Migrate(ctx context.Context) error {
	return store.Migrate(ctx, a.DB, a.Dialect)
}

// Seed inserts the welcome post into an empty store when BLOG_DO_SEED is set.
func (a *App) Seed(ctx context.Context) error {
	_, err := store.Seed(ctx, a.Store, a.Config.DoSeed, a.now())
	return err
}

// Now returns the current time according to the application clock.
func (a *App) Now() time.Time {
	return a.now()
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
