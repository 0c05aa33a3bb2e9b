// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/olegiv/ocms-blog/internal/store"
)

// Exporter writes all posts to a YAML document.
type Exporter struct {
	store    store.PostStore
	logger   *slog.Logger
	siteName string
	now      func() time.Time
}

// NewExporter creates a new Exporter instance.
func NewExporter(posts store.PostStore, logger *slog.Logger, siteName string) *Exporter {
	return &Exporter{
		store:    posts,
		logger:   logger,
		siteName: siteName,
		now:      time.Now,
	}
}

// Export collects every post into an ExportData document.
func (e *Exporter) Export(ctx context.Context) (*ExportData, error) {
	posts, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	e.logger.Info("exporting posts", "count", len(posts))

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: e.now().UTC().Truncate(time.Second),
		Site:       e.siteName,
		Posts:      posts,
	}, nil
}

// ExportToWriter writes the export as YAML to the provided writer.
func (e *Exporter) ExportToWriter(ctx context.Context, w io.Writer) error {
	data, err := e.Export(ctx)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return encoder.Close()
}

// ExportToFile writes the export as YAML to a file.
func (e *Exporter) ExportToFile(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := e.ExportToWriter(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
