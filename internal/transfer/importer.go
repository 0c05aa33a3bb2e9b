// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/olegiv/ocms-blog/internal/form"
	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/store"
)

// Importer creates posts from a YAML export document.
type Importer struct {
	store  store.PostStore
	logger *slog.Logger
	now    func() time.Time
}

// NewImporter creates a new Importer instance. now dates posts that carry
// no date of their own.
func NewImporter(posts store.PostStore, logger *slog.Logger, now func() time.Time) *Importer {
	if now == nil {
		now = time.Now
	}
	return &Importer{
		store:  posts,
		logger: logger,
		now:    now,
	}
}

// Import validates each post with the post form rules and creates the
// valid ones. Posts whose title already exists are skipped. A store
// failure other than a duplicate title aborts the import.
func (i *Importer) Import(ctx context.Context, data *ExportData) (*ImportResult, error) {
	if !supportedVersion(data.Version) {
		return nil, fmt.Errorf("unsupported export version %q", data.Version)
	}

	result := &ImportResult{}
	for idx, entry := range data.Posts {
		post, msg := i.preparePost(entry)
		if msg != "" {
			result.AddError(idx, entry.Title, msg)
			continue
		}

		created, err := i.store.Create(ctx, post)
		if errors.Is(err, store.ErrConstraintViolation) {
			i.logger.Info("skipping duplicate post", "title", post.Title)
			result.Skipped++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("importing post %q: %w", post.Title, err)
		}

		i.logger.Debug("imported post", "post_id", created.ID, "title", created.Title)
		result.Created++
	}

	i.logger.Info("import finished",
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

// ImportFromReader decodes a YAML document and imports it.
func (i *Importer) ImportFromReader(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var data ExportData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return i.Import(ctx, &data)
}

// ImportFromFile reads and imports from a file path.
func (i *Importer) ImportFromFile(ctx context.Context, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return i.ImportFromReader(ctx, f)
}

// preparePost runs entry through the form rules. It returns a non-empty
// message when the entry is rejected.
func (i *Importer) preparePost(entry model.Post) (model.Post, string) {
	input := form.BindPost(url.Values{
		form.FieldTitle:    {entry.Title},
		form.FieldSubtitle: {entry.Subtitle},
		form.FieldAuthor:   {entry.Author},
		form.FieldImgURL:   {entry.ImgURL},
		form.FieldBody:     {entry.Body},
	})

	fields, errs := input.Validate()
	if len(errs) > 0 {
		return model.Post{}, describeErrors(errs)
	}

	post := model.NewPost(fields, i.now())
	if date := strings.TrimSpace(entry.Date); date != "" {
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			return model.Post{}, fmt.Sprintf("date: %q is not in the %q format", date, model.DateLayout)
		}
		post.Date = date
	}
	return post, ""
}

// describeErrors flattens field errors into a stable single line.
func describeErrors(errs form.Errors) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+errs[field])
	}
	return strings.Join(parts, "; ")
}

// supportedVersion accepts documents of the current major version.
func supportedVersion(v string) bool {
	major, _, _ := strings.Cut(v, ".")
	current, _, _ := strings.Cut(ExportVersion, ".")
	return major == current
}
