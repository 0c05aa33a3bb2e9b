// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-blog/web"
)

func mustSub(t *testing.T) fs.FS {
	t.Helper()
	sub, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	return sub
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		body string
		max  int
		want string
	}{
		{"strips tags", "<p>Hello <strong>world</strong></p>", 50, "Hello world"},
		{"unescapes entities", "<p>Fish &amp; chips</p>", 50, "Fish & chips"},
		{"collapses whitespace", "<p>a</p>\n\n<p>b</p>", 50, "a b"},
		{"drops scripts", "<script>alert(1)</script>ok", 50, "ok"},
		{"truncates", "<p>abcdefghij</p>", 4, "abcd..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.body, tt.max))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "héll...", Truncate("héllo wörld", 4))
	assert.Equal(t, "ab...", Truncate("ab cd", 3))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestTemplateFuncs(t *testing.T) {
	funcs := TemplateFuncs()
	for _, name := range []string{"safeHTML", "excerpt", "truncate", "fieldError"} {
		assert.Contains(t, funcs, name)
	}

	fieldError := funcs["fieldError"].(func(map[string]string, string) string)
	assert.Equal(t, "bad", fieldError(map[string]string{"title": "bad"}, "title"))
	assert.Equal(t, "", fieldError(nil, "title"))
}
