// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/ocms-blog/internal/handler"
	"github.com/olegiv/ocms-blog/internal/middleware"
)

// staticMaxAge is the Cache-Control max-age of static assets (1 day).
const staticMaxAge = 86400

// Routes builds the HTTP handler with the full middleware stack.
func (a *App) Routes() http.Handler {
	cfg := a.Config

	postsHandler := handler.NewPostsHandler(a.Store, a.Renderer, handler.PostsConfig{
		Now:          a.now,
		StrictDelete: cfg.StrictDelete,
	})
	pagesHandler := handler.NewPagesHandler(a.Pages, a.Renderer)
	healthHandler := handler.NewHealthHandler(a.DB, a.Store)

	formLimiter := middleware.NewFormRateLimiter(cfg.FormRateLimit, cfg.FormRateBurst)
	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SecretKey), cfg.IsDevelopment(), cfg.ServerPort))

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(chimw.RedirectSlashes)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	r.Get(handler.RouteHealth, healthHandler.Health)
	r.Handle(handler.RouteStatic, middleware.StaticFiles("/static/", a.static, staticMaxAge))

	r.Group(func(r chi.Router) {
		r.Use(a.Sessions.LoadAndSave)
		r.Use(csrfMiddleware)

		r.Get(handler.RouteRoot, postsHandler.List)
		r.Get(handler.RoutePost, postsHandler.Show)
		r.Get(handler.RouteAbout, pagesHandler.About)
		r.Get(handler.RouteContact, pagesHandler.Contact)

		r.Group(func(r chi.Router) {
			r.Use(formLimiter.Middleware())

			r.Get(handler.RouteNewPost, postsHandler.NewForm)
			r.Post(handler.RouteNewPost, postsHandler.Create)
			r.Get(handler.RouteEditPost, postsHandler.EditForm)
			r.Post(handler.RouteEditPost, postsHandler.Update)
		})

		r.Group(func(r chi.Router) {
			r.Use(formLimiter.MiddlewareAll())

			r.Get(handler.RouteDelete, postsHandler.Delete)
			r.Post(handler.RouteDelete, postsHandler.Delete)
		})

		r.NotFound(pagesHandler.NotFound)
	})

	return r
}
