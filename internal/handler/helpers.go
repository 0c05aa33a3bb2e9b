// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseIDParam parses the {id} URL parameter. Only non-negative decimal
// integers are accepted, mirroring an int route converter.
func parseIDParam(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, paramID)
	if raw == "" || raw[0] == '+' || raw[0] == '-' {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// postURL returns the view URL of a post.
func postURL(id int64) string {
	return "/post/" + formatID(id)
}
