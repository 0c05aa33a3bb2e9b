// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package form binds and validates submitted post forms.
package form

import (
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/olegiv/ocms-blog/internal/model"
)

// Field names as submitted by the post form.
const (
	FieldTitle    = "title"
	FieldSubtitle = "subtitle"
	FieldAuthor   = "author"
	FieldImgURL   = "img_url"
	FieldBody     = "body"
)

// MaxFieldLength bounds the single-line fields (VARCHAR(250) columns).
const MaxFieldLength = 250

// Validation messages.
const (
	MsgRequired   = "This field is required."
	MsgInvalidURL = "Invalid URL."
	MsgTooLong    = "Field cannot be longer than 250 characters."
)

var (
	hostLabel = regexp.MustCompile(`(?i)^(xn--)?[a-z0-9_]([a-z0-9_-]{0,61}[a-z0-9_])?$`)
	tldLabel  = regexp.MustCompile(`(?i)^([a-z]{2,20}|xn--([a-z0-9]+-)*[a-z0-9]+)$`)
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// Add records msg for field unless the field already has an error.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// PostInput is the raw, bound post form.
type PostInput struct {
	Title    string
	Subtitle string
	Author   string
	ImgURL   string
	Body     string
}

// BindPost reads the post fields from submitted values. Single-line fields
// are trimmed and the title is NFC-normalized; the body is kept verbatim.
func BindPost(values url.Values) PostInput {
	return PostInput{
		Title:    norm.NFC.String(strings.TrimSpace(values.Get(FieldTitle))),
		Subtitle: strings.TrimSpace(values.Get(FieldSubtitle)),
		Author:   strings.TrimSpace(values.Get(FieldAuthor)),
		ImgURL:   strings.TrimSpace(values.Get(FieldImgURL)),
		Body:     values.Get(FieldBody),
	}
}

// FromPost pre-fills a form from a stored post.
func FromPost(p model.Post) PostInput {
	f := p.Fields()
	return PostInput{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Author:   f.Author,
		ImgURL:   f.ImgURL,
		Body:     f.Body,
	}
}

// Validate checks the input. On success it returns the fields ready for the
// store and an empty Errors; otherwise the returned Errors is non-empty.
func (in PostInput) Validate() (model.PostFields, Errors) {
	errs := Errors{}

	requireText(errs, FieldTitle, in.Title)
	requireText(errs, FieldSubtitle, in.Subtitle)
	requireText(errs, FieldAuthor, in.Author)
	requireText(errs, FieldImgURL, in.ImgURL)
	if strings.TrimSpace(in.Body) == "" {
		errs.Add(FieldBody, MsgRequired)
	}

	if !errs.Has(FieldImgURL) && !IsValidURL(in.ImgURL) {
		errs.Add(FieldImgURL, MsgInvalidURL)
	}

	if len(errs) > 0 {
		return model.PostFields{}, errs
	}

	return model.PostFields{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		Author:   in.Author,
		ImgURL:   in.ImgURL,
	}, errs
}

// Values returns the input keyed by field name for re-rendering the form.
func (in PostInput) Values() map[string]string {
	return map[string]string{
		FieldTitle:    in.Title,
		FieldSubtitle: in.Subtitle,
		FieldAuthor:   in.Author,
		FieldImgURL:   in.ImgURL,
		FieldBody:     in.Body,
	}
}

func requireText(errs Errors, field, value string) {
	switch {
	case value == "":
		errs.Add(field, MsgRequired)
	case utf8.RuneCountInString(value) > MaxFieldLength:
		errs.Add(field, MsgTooLong)
	}
}

// IsValidURL reports whether raw is an absolute http(s) URL whose host is an
// IP address or a hostname with a top-level domain.
func IsValidURL(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels[:len(labels)-1] {
		if !hostLabel.MatchString(label) {
			return false
		}
	}
	return tldLabel.MatchString(labels[len(labels)-1])
}
