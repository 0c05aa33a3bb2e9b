// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"html"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// ExcerptLength is the default length of list-view previews, in characters.
const ExcerptLength = 160

// textPolicy strips all markup; it is used for previews only and never
// applied to stored post bodies.
var textPolicy = bluemonday.StrictPolicy()

// TemplateFuncs returns custom template functions.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Post bodies are opaque HTML produced by the editor widget.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) //nolint:gosec // body is stored and emitted as-is
		},
		"excerpt":  Excerpt,
		"truncate": Truncate,
		"fieldError": func(errs map[string]string, field string) string {
			return errs[field]
		},
	}
}

// Excerpt returns a plain-text preview of an HTML body, at most maxChars
// characters long.
func Excerpt(body string, maxChars int) string {
	text := html.UnescapeString(textPolicy.Sanitize(body))
	text = strings.Join(strings.Fields(text), " ")
	return Truncate(text, maxChars)
}

// Truncate shortens s to at most length characters, appending "..." when cut.
func Truncate(s string, length int) string {
	if length <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:length])) + "..."
}
