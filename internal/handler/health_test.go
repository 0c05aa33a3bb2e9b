// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-blog/internal/store"
	"github.com/olegiv/ocms-blog/internal/testutil"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth_OK(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	posts := store.NewPosts(db, store.SQLite)
	env := &testEnv{posts: posts}
	env.mustCreate(t, "Counted")

	h := NewHealthHandler(db, posts)
	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"status": "ok", "posts": float64(1)}, decodeHealth(t, w))
}

func TestHealth_PingFails(t *testing.T) {
	ping := pingerFunc(func(context.Context) error { return errors.New("connection refused") })
	h := NewHealthHandler(ping, failingStore{})

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, map[string]any{"status": "unavailable"}, decodeHealth(t, w))
}

func TestHealth_CountFails(t *testing.T) {
	ping := pingerFunc(func(context.Context) error { return nil })
	h := NewHealthHandler(ping, failingStore{})

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
