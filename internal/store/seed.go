// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/ocms-blog/internal/model"
)

// WelcomePost is inserted into an empty store when seeding is enabled.
var WelcomePost = model.PostFields{
	Title:    "Welcome to the blog",
	Subtitle: "Your first post",
	Author:   "Admin",
	ImgURL:   "https://images.unsplash.com/photo-1499750310107-5fef28a66643",
	Body:     "<p>This post was created on first start. Edit or delete it from the post page.</p>",
}

// Seed creates initial data when enabled and the store is empty.
// It reports whether a post was inserted.
func Seed(ctx context.Context, posts PostStore, doSeed bool, now time.Time) (bool, error) {
	if !doSeed {
		slog.Info("database seeding disabled")
		return false, nil
	}

	n, err := posts.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("checking for existing posts: %w", err)
	}
	if n > 0 {
		slog.Info("posts already exist, skipping seed", "count", n)
		return false, nil
	}

	p, err := posts.Create(ctx, model.NewPost(WelcomePost, now))
	if err != nil {
		return false, fmt.Errorf("creating welcome post: %w", err)
	}

	slog.Info("created welcome post", "post_id", p.ID)
	return true, nil
}
