// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/pages"
	"github.com/olegiv/ocms-blog/internal/render"
	"github.com/olegiv/ocms-blog/internal/store"
	"github.com/olegiv/ocms-blog/internal/testutil"
	"github.com/olegiv/ocms-blog/web"
)

// testNow is the fixed submission time used by handler tests.
var testNow = time.Date(2024, time.April, 5, 14, 30, 0, 0, time.UTC)

const testDate = "April 05, 2024"

type testEnv struct {
	posts  store.PostStore
	router http.Handler
}

// newTestRenderer builds a renderer over the embedded templates.
func newTestRenderer(t *testing.T, sm *scs.SessionManager) *render.Renderer {
	t.Helper()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		SiteName:       "Test Blog",
	})
	require.NoError(t, err)
	return renderer
}

// newTestEnv wires the handlers over an in-memory database.
func newTestEnv(t *testing.T, strictDelete bool) *testEnv {
	t.Helper()

	db := testutil.TestMemoryDB(t)
	return newTestEnvWithStore(t, store.NewPosts(db, store.SQLite), strictDelete)
}

func newTestEnvWithStore(t *testing.T, posts store.PostStore, strictDelete bool) *testEnv {
	t.Helper()

	sm := scs.New()
	renderer := newTestRenderer(t, sm)

	library, err := pages.Load(web.Content, "content")
	require.NoError(t, err)

	ph := NewPostsHandler(posts, renderer, PostsConfig{
		Now:          testutil.FixedClock(testNow),
		StrictDelete: strictDelete,
	})
	pgh := NewPagesHandler(library, renderer)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Get(RouteRoot, ph.List)
	r.Get(RoutePost, ph.Show)
	r.Get(RouteNewPost, ph.NewForm)
	r.Post(RouteNewPost, ph.Create)
	r.Get(RouteEditPost, ph.EditForm)
	r.Post(RouteEditPost, ph.Update)
	r.Get(RouteDelete, ph.Delete)
	r.Post(RouteDelete, ph.Delete)
	r.Get(RouteAbout, pgh.About)
	r.Get(RouteContact, pgh.Contact)
	r.NotFound(pgh.NotFound)

	return &testEnv{posts: posts, router: r}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, httptest.NewRequest(http.MethodGet, target, nil))
}

func (e *testEnv) postForm(t *testing.T, target string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, newFormRequest(target, values))
}

func (e *testEnv) mustCreate(t *testing.T, title string) model.Post {
	t.Helper()
	p, err := e.posts.Create(context.Background(), model.NewPost(model.PostFields{
		Title:    title,
		Subtitle: "Sub of " + title,
		Author:   "Ann",
		ImgURL:   "https://example.com/x.png",
		Body:     "<p>body of " + title + "</p>",
	}, time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	return p
}

func newFormRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validForm(title string) url.Values {
	return url.Values{
		"title":    {title},
		"subtitle": {"S"},
		"author":   {"A"},
		"img_url":  {"https://x.com/i.png"},
		"body":     {"<p>hi</p>"},
	}
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func newGetWithCookies(target string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// withURLParam attaches a chi URL parameter to req.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func indexOf(s, substr string) int {
	return strings.Index(s, substr)
}
