// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain types shared by the store, form and handlers.
package model

import "time"

// DateLayout is the long human-readable date stored with every post, e.g. "April 05, 2024".
const DateLayout = "January 02, 2006"

// Post represents a single blog post.
type Post struct {
	ID       int64  `json:"id" yaml:"id,omitempty"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Date     string `json:"date" yaml:"date,omitempty"`
	Body     string `json:"body" yaml:"body"`
	Author   string `json:"author" yaml:"author"`
	ImgURL   string `json:"img_url" yaml:"img_url"`
}

// PostFields holds the mutable subset of a post. ID and Date are never
// part of an update.
type PostFields struct {
	Title    string
	Subtitle string
	Body     string
	Author   string
	ImgURL   string
}

// FormatDate formats t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NewPost builds an unsaved post from validated fields, stamped with the given date.
func NewPost(f PostFields, created time.Time) Post {
	p := Post{Date: FormatDate(created)}
	p.Apply(f)
	return p
}

// Fields returns the mutable fields of the post.
func (p Post) Fields() PostFields {
	return PostFields{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Body:     p.Body,
		Author:   p.Author,
		ImgURL:   p.ImgURL,
	}
}

// Apply overwrites the mutable fields, leaving ID and Date untouched.
func (p *Post) Apply(f PostFields) {
	p.Title = f.Title
	p.Subtitle = f.Subtitle
	p.Body = f.Body
	p.Author = f.Author
	p.ImgURL = f.ImgURL
}
