// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers
never touch chi directly for path values.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/pkg/slug"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Slug retrieves a named URL parameter that must be usable as a path segment.

Description: Every addressable entity is published under a segment made of
URL-unreserved characters, so any other value can never resolve and is
rejected before any lookup.

Returns:
  - string: The slug
  - error: apperr.NotFound(resource) if the value is not a valid segment
*/
func Slug(request *http.Request, name, resource string) (string, error) {
	value := chi.URLParam(request, name)
	if !slug.IsSegment(value) {
		return "", apperr.NotFound(resource)
	}
	return value, nil
}

/*
Wildcard returns the value matched by a trailing "/*" pattern as a clean
absolute path: leading slash, no trailing slash ("/" for an empty match).
*/
func Wildcard(request *http.Request) string {
	return "/" + strings.Trim(chi.URLParam(request, "*"), "/")
}
