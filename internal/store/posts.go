// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store persists blog posts in a single relational table.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/olegiv/ocms-blog/internal/model"
)

var (
	// ErrNotFound is returned when no post has the requested id.
	ErrNotFound = errors.New("post not found")
	// ErrConstraintViolation is returned when a write collides with a
	// uniqueness constraint (duplicate title).
	ErrConstraintViolation = errors.New("constraint violation")
)

// PostStore is durable CRUD over posts. Every write is committed immediately.
type PostStore interface {
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id int64) (model.Post, error)
	Create(ctx context.Context, p model.Post) (model.Post, error)
	Update(ctx context.Context, id int64, f model.PostFields) (model.Post, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

const postColumns = "id, title, subtitle, date, body, author, img_url"

// Posts is the SQL implementation of PostStore.
type Posts struct {
	db      *sql.DB
	dialect Dialect
}

var _ PostStore = (*Posts)(nil)

// NewPosts creates a Posts store over db.
func NewPosts(db *sql.DB, d Dialect) *Posts {
	return &Posts{db: db, dialect: d}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.Author, &p.ImgURL)
	return p, err
}

// List returns all posts in insertion order.
func (s *Posts) List(ctx context.Context) ([]model.Post, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+postColumns+" FROM posts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

// Get returns the post with the given id or ErrNotFound.
func (s *Posts) Get(ctx context.Context, id int64) (model.Post, error) {
	row := s.db.QueryRowContext(ctx, s.dialect.Rebind("SELECT "+postColumns+" FROM posts WHERE id = ?"), id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, ErrNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("getting post %d: %w", id, err)
	}
	return p, nil
}

// Create inserts p with a freshly assigned id and returns the stored post.
// A duplicate title yields ErrConstraintViolation.
func (s *Posts) Create(ctx context.Context, p model.Post) (model.Post, error) {
	const insert = "INSERT INTO posts (title, subtitle, date, body, author, img_url) VALUES (?, ?, ?, ?, ?, ?)"
	args := []any{p.Title, p.Subtitle, p.Date, p.Body, p.Author, p.ImgURL}

	var id int64
	if s.dialect == Postgres {
		err := s.db.QueryRowContext(ctx, s.dialect.Rebind(insert+" RETURNING id"), args...).Scan(&id)
		if err != nil {
			return model.Post{}, s.writeError("creating post", p.Title, err)
		}
	} else {
		res, err := s.db.ExecContext(ctx, insert, args...)
		if err != nil {
			return model.Post{}, s.writeError("creating post", p.Title, err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return model.Post{}, fmt.Errorf("reading new post id: %w", err)
		}
	}

	p.ID = id
	return p, nil
}

// Update overwrites the mutable fields of post id. ID and date are never touched.
func (s *Posts) Update(ctx context.Context, id int64, f model.PostFields) (model.Post, error) {
	const update = "UPDATE posts SET title = ?, subtitle = ?, body = ?, author = ?, img_url = ? WHERE id = ?"

	if _, err := s.db.ExecContext(ctx, s.dialect.Rebind(update),
		f.Title, f.Subtitle, f.Body, f.Author, f.ImgURL, id); err != nil {
		return model.Post{}, s.writeError("updating post", f.Title, err)
	}

	// RowsAffected is 0 on MySQL for a no-op update, so existence is
	// decided by reading the row back.
	return s.Get(ctx, id)
}

// Delete removes post id, returning ErrNotFound if it does not exist.
func (s *Posts) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.dialect.Rebind("DELETE FROM posts WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("deleting post %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting post %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored posts.
func (s *Posts) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}
	return n, nil
}

func (s *Posts) writeError(op, title string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: title %q: %w", op, title, ErrConstraintViolation)
	}
	return fmt.Errorf("%s: %w", op, err)
}
