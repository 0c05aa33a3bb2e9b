// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"io/fs"
	"net/http"
	"strconv"
	"strings"
)

// StaticFiles serves fsys under prefix with a Cache-Control max-age.
// Directories answer 404: no listings and no redirect to a slash-terminated
// URL, which the slash-stripping redirect would bounce straight back.
func StaticFiles(prefix string, fsys fs.FS, maxAge int) http.Handler {
	files := http.StripPrefix(prefix, http.FileServerFS(fsys))
	cacheControl := "public, max-age=" + strconv.Itoa(maxAge)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDir(fsys, strings.TrimPrefix(r.URL.Path, prefix)) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	})
}

// isDir reports whether name is empty, slash-terminated or a directory in fsys.
func isDir(fsys fs.FS, name string) bool {
	if name == "" || strings.HasSuffix(name, "/") {
		return true
	}
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(fsys, name)
	return err == nil && info.IsDir()
}
