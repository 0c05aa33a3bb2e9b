// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// healthCheckTimeout bounds the database checks of a health request.
const healthCheckTimeout = 2 * time.Second

// Pinger is implemented by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PostCounter reports how many posts are stored.
type PostCounter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db    Pinger
	posts PostCounter
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Pinger, posts PostCounter) *HealthHandler {
	return &HealthHandler{db: db, posts: posts}
}

// HealthStatus is the JSON body of a health response.
type HealthStatus struct {
	Status string `json:"status"`
	Posts  *int64 `json:"posts,omitempty"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		slog.Error("health check: database ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthStatus{Status: "unavailable"})
		return
	}

	n, err := h.posts.Count(ctx)
	if err != nil {
		slog.Error("health check: counting posts failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthStatus{Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, HealthStatus{Status: "ok", Posts: &n})
}
