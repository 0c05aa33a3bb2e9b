// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route patterns for chi router registration.
const (
	RouteRoot     = "/"
	RoutePost     = "/post/{id}"
	RouteNewPost  = "/new-post"
	RouteEditPost = "/edit-post/{id}"
	RouteDelete   = "/delete/{id}"
	RouteAbout    = "/about"
	RouteContact  = "/contact"
	RouteHealth   = "/health"
	RouteStatic   = "/static/*"
)

// Page template names.
const (
	templateIndex    = "index"
	templatePost     = "post"
	templateMakePost = "make-post"
	templatePage     = "page"
	templateError    = "error"
)

// Flash and error messages.
const (
	msgPostCreated    = "Post created."
	msgPostUpdated    = "Post updated."
	msgPostDeleted    = "Post deleted."
	msgDuplicateTitle = "A post with this title already exists."
	msgNotFound       = "The page you are looking for does not exist."
	msgServerError    = "Something went wrong. Please try again later."
	msgBadForm        = "The submitted form could not be read."
)

// paramID is the chi URL parameter holding a post id.
const paramID = "id"
