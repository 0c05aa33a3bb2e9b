// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"html/template"
	"net/http"

	"github.com/olegiv/ocms-blog/internal/pages"
	"github.com/olegiv/ocms-blog/internal/render"
)

// PagesHandler serves the static informational pages.
type PagesHandler struct {
	library  *pages.Library
	renderer *render.Renderer
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(library *pages.Library, renderer *render.Renderer) *PagesHandler {
	return &PagesHandler{
		library:  library,
		renderer: renderer,
	}
}

// PageData holds data for the static page template.
type PageData struct {
	HTML template.HTML
}

// About handles GET /about.
func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "about")
}

// Contact handles GET /contact.
func (h *PagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "contact")
}

// NotFound renders the 404 page for unknown routes.
func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, r, h.renderer)
}

func (h *PagesHandler) serve(w http.ResponseWriter, r *http.Request, slug string) {
	page, ok := h.library.Get(slug)
	if !ok {
		notFound(w, r, h.renderer)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templatePage, render.TemplateData{
		Title:      page.Title,
		Heading:    page.Title,
		Subheading: page.Subtitle,
		Data:       PageData{HTML: page.HTML},
	})
}
