// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transfer provides YAML import/export of blog posts.
package transfer

import (
	"fmt"
	"time"

	"github.com/olegiv/ocms-blog/internal/model"
)

// ExportVersion is the current version of the export format.
const ExportVersion = "1.0"

// ExportData represents the complete export document.
type ExportData struct {
	Version    string       `yaml:"version"`
	ExportedAt time.Time    `yaml:"exported_at"`
	Site       string       `yaml:"site,omitempty"`
	Posts      []model.Post `yaml:"posts"`
}

// ImportError describes a post that could not be imported.
type ImportError struct {
	Index   int    `yaml:"index"`
	Title   string `yaml:"title,omitempty"`
	Message string `yaml:"message"`
}

func (e ImportError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("post #%d: %s", e.Index+1, e.Message)
	}
	return fmt.Sprintf("post #%d (%q): %s", e.Index+1, e.Title, e.Message)
}

// ImportResult summarises an import run.
type ImportResult struct {
	Created int
	Skipped int
	Errors  []ImportError
}

// AddError records a rejected post.
func (r *ImportResult) AddError(index int, title, message string) {
	r.Errors = append(r.Errors, ImportError{Index: index, Title: title, Message: message})
}

// HasErrors reports whether any post was rejected.
func (r *ImportResult) HasErrors() bool {
	return len(r.Errors) > 0
}
