// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pages loads the static informational pages from markdown files.
package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// Page is a rendered static page.
type Page struct {
	Slug     string
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	HTML     template.HTML `yaml:"-"`
}

// Library holds all pages, keyed by slug.
type Library struct {
	pages map[string]Page
}

// Load converts every .md file under dir in fsys. The file name without
// extension becomes the slug.
func Load(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading pages dir: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	lib := &Library{pages: make(map[string]Page)}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}

		slug := strings.TrimSuffix(entry.Name(), ".md")
		page, err := parse(md, slug, raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		lib.pages[slug] = page
	}

	return lib, nil
}

// Get returns the page with the given slug.
func (l *Library) Get(slug string) (Page, bool) {
	p, ok := l.pages[slug]
	return p, ok
}

func parse(md goldmark.Markdown, slug string, raw []byte) (Page, error) {
	page := Page{Slug: slug}

	meta, body := splitFrontMatter(raw)
	if len(meta) > 0 {
		if err := yaml.Unmarshal(meta, &page); err != nil {
			return Page{}, fmt.Errorf("front matter: %w", err)
		}
	}
	if page.Title == "" {
		page.Title = strings.ToUpper(slug[:1]) + slug[1:]
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("converting markdown: %w", err)
	}
	page.HTML = template.HTML(buf.String()) //nolint:gosec // embedded content written by the site owner

	return page, nil
}

// splitFrontMatter separates a leading YAML block delimited by "---" lines.
func splitFrontMatter(raw []byte) (meta, body []byte) {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(text, frontMatterDelim+"\n") {
		return nil, raw
	}

	rest := text[len(frontMatterDelim)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelim+"\n")
	if end < 0 {
		return nil, raw
	}

	return []byte(rest[:end]), []byte(rest[end+len(frontMatterDelim)+2:])
}
