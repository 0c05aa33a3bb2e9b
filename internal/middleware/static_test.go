// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func TestStaticFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"css/blog.css": {Data: []byte("body{}")},
	}
	handler := StaticFiles("/static/", fsys, 3600)

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantCache string
	}{
		{"file", "/static/css/blog.css", http.StatusOK, "public, max-age=3600"},
		{"missing", "/static/css/missing.css", http.StatusNotFound, ""},
		{"directory", "/static/css/", http.StatusNotFound, ""},
		{"directory without slash", "/static/css", http.StatusNotFound, ""},
		{"prefix root", "/static/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if got := w.Header().Get("Cache-Control"); got != tt.wantCache {
				t.Errorf("Cache-Control = %q, want %q", got, tt.wantCache)
			}
		})
	}
}
