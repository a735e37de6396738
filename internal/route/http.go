// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package route

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opentools/internal/platform/apperr"
	requestutil "github.com/taibuivan/opentools/internal/platform/request"
	"github.com/taibuivan/opentools/internal/platform/respond"
	"github.com/taibuivan/opentools/internal/platform/validate"
	"github.com/taibuivan/opentools/pkg/pagination"
	"github.com/taibuivan/opentools/pkg/slice"
)

// Handler exposes the route table and page resolution over HTTP.
type Handler struct {
	table    *Table
	resolver *Resolver
}

// NewHandler constructs a route [Handler].
func NewHandler(table *Table, resolver *Resolver) *Handler {
	return &Handler{table: table, resolver: resolver}
}

// RegisterRoutes mounts the handler under the API version router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/routes", handler.listRoutes)
	router.Get("/pages", handler.getPage)
	router.Get("/pages/*", handler.getPage)
}

// listRoutes returns the route table, optionally filtered by ?family=.
// An unknown family is a validation error rather than an empty page.
func (handler *Handler) listRoutes(writer http.ResponseWriter, request *http.Request) {
	routes := handler.table.Routes()

	if family := request.URL.Query().Get("family"); family != "" {
		known := slice.Map(Families(), func(f Family) string { return string(f) })
		if err := (&validate.Validator{}).OneOf("family", family, known...).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
		routes = handler.table.ByFamily(Family(family))
	}

	params := pagination.FromRequest(request)
	respond.Paginated(writer, pagination.Slice(routes, params), pagination.NewMeta(params.Page, params.Limit, len(routes)))
}

// getPage resolves the site page published at the wildcard path.
func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	route, ok := handler.table.Lookup(requestutil.Wildcard(request))
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}

	page, err := handler.resolver.Resolve(route)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}
