// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler implements the HTTP handlers of the blog.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/ocms-blog/internal/form"
	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/render"
	"github.com/olegiv/ocms-blog/internal/store"
)

// siteSubheading is shown under the site name on the post list.
const siteSubheading = "A collection of random musings."

// PostsHandler handles listing, viewing, creating, editing and deleting posts.
type PostsHandler struct {
	store        store.PostStore
	renderer     *render.Renderer
	now          func() time.Time
	strictDelete bool
}

// PostsConfig configures a PostsHandler.
type PostsConfig struct {
	// Now returns the submission time stamped on new posts. Defaults to time.Now.
	Now func() time.Time
	// StrictDelete rejects GET /delete/{id} with 405.
	StrictDelete bool
}

// NewPostsHandler creates a new PostsHandler.
func NewPostsHandler(posts store.PostStore, renderer *render.Renderer, cfg PostsConfig) *PostsHandler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &PostsHandler{
		store:        posts,
		renderer:     renderer,
		now:          now,
		strictDelete: cfg.StrictDelete,
	}
}

// ListData holds data for the post list template.
type ListData struct {
	Posts         []model.Post
	ExcerptLength int
}

// PostData holds data for the single post template.
type PostData struct {
	Post model.Post
}

// FormField describes one input of the post form.
type FormField struct {
	Name  string
	Label string
}

// postFormFields lists the post form inputs in display order.
var postFormFields = []FormField{
	{Name: form.FieldTitle, Label: "Blog Post Title"},
	{Name: form.FieldSubtitle, Label: "Subtitle"},
	{Name: form.FieldAuthor, Label: "Your Name"},
	{Name: form.FieldImgURL, Label: "Blog Image URL"},
	{Name: form.FieldBody, Label: "Blog Content"},
}

// FormData holds data for the create/edit form template.
type FormData struct {
	Action string
	Fields []FormField
	Values map[string]string
	Errors form.Errors
	IsEdit bool
}

// List handles GET / - lists all posts.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.List(r.Context())
	if err != nil {
		serverError(w, r, h.renderer, "failed to list posts", "error", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templateIndex, render.TemplateData{
		Subheading: siteSubheading,
		Data: ListData{
			Posts:         posts,
			ExcerptLength: render.ExcerptLength,
		},
	})
}

// Show handles GET /post/{id} - displays a single post.
func (h *PostsHandler) Show(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templatePost, render.TemplateData{
		Title:      post.Title,
		Heading:    post.Title,
		Subheading: post.Subtitle,
		Data:       PostData{Post: post},
	})
}

// NewForm handles GET /new-post - displays an empty post form.
func (h *PostsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, RouteNewPost, false, form.PostInput{}, form.Errors{})
}

// Create handles POST /new-post - validates and stores a new post.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, h.renderer, http.StatusBadRequest, msgBadForm)
		return
	}

	input := form.BindPost(r.PostForm)
	fields, errs := input.Validate()
	if len(errs) > 0 {
		h.renderForm(w, r, RouteNewPost, false, input, errs)
		return
	}

	post, err := h.store.Create(r.Context(), model.NewPost(fields, h.now()))
	if errors.Is(err, store.ErrConstraintViolation) {
		errs.Add(form.FieldTitle, msgDuplicateTitle)
		h.renderForm(w, r, RouteNewPost, false, input, errs)
		return
	}
	if err != nil {
		serverError(w, r, h.renderer, "failed to create post", "error", err)
		return
	}

	slog.Info("post created", "post_id", post.ID)
	flashSuccess(w, r, h.renderer, RouteRoot, msgPostCreated)
}

// EditForm handles GET /edit-post/{id} - displays the form pre-filled with the post.
func (h *PostsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	h.renderForm(w, r, editURL(post.ID), true, form.FromPost(post), form.Errors{})
}

// Update handles POST /edit-post/{id} - validates and saves the edited post.
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		renderError(w, r, h.renderer, http.StatusBadRequest, msgBadForm)
		return
	}

	input := form.BindPost(r.PostForm)
	fields, errs := input.Validate()
	if len(errs) > 0 {
		h.renderForm(w, r, editURL(post.ID), true, input, errs)
		return
	}

	_, err := h.store.Update(r.Context(), post.ID, fields)
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(w, r, h.renderer)
		return
	case errors.Is(err, store.ErrConstraintViolation):
		errs.Add(form.FieldTitle, msgDuplicateTitle)
		h.renderForm(w, r, editURL(post.ID), true, input, errs)
		return
	case err != nil:
		serverError(w, r, h.renderer, "failed to update post", "error", err, "post_id", post.ID)
		return
	}

	slog.Info("post updated", "post_id", post.ID)
	flashSuccess(w, r, h.renderer, postURL(post.ID), msgPostUpdated)
}

// Delete handles GET and POST /delete/{id} - removes the post.
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.strictDelete && r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		renderError(w, r, h.renderer, http.StatusMethodNotAllowed, "Posts can only be deleted with a POST request.")
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		notFound(w, r, h.renderer)
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r, h.renderer)
		return
	}
	if err != nil {
		serverError(w, r, h.renderer, "failed to delete post", "error", err, "post_id", id)
		return
	}

	slog.Info("post deleted", "post_id", id)
	flashSuccess(w, r, h.renderer, RouteRoot, msgPostDeleted)
}

// loadPost fetches the post named by the {id} parameter. It writes the 404
// or 500 response itself and returns false when the post is unavailable.
func (h *PostsHandler) loadPost(w http.ResponseWriter, r *http.Request) (model.Post, bool) {
	id, ok := parseIDParam(r)
	if !ok {
		notFound(w, r, h.renderer)
		return model.Post{}, false
	}

	post, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r, h.renderer)
		return model.Post{}, false
	}
	if err != nil {
		serverError(w, r, h.renderer, "failed to get post", "error", err, "post_id", id)
		return model.Post{}, false
	}
	return post, true
}

func (h *PostsHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, isEdit bool, input form.PostInput, errs form.Errors) {
	heading := "New Post"
	if isEdit {
		heading = "Edit Post"
	}

	renderPage(w, r, h.renderer, http.StatusOK, templateMakePost, render.TemplateData{
		Title:   heading,
		Heading: heading,
		Data: FormData{
			Action: action,
			Fields: postFormFields,
			Values: input.Values(),
			Errors: errs,
			IsEdit: isEdit,
		},
	})
}

func editURL(id int64) string {
	return "/edit-post/" + formatID(id)
}
