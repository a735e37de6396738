// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/opentools/internal/platform/request"
	"github.com/taibuivan/opentools/internal/platform/respond"
	"github.com/taibuivan/opentools/pkg/pagination"
)

// Handler serves the read-only catalogue API.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalogue [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the catalogue endpoints under the API version router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/categories", handler.listCategories)
	router.Get("/categories/{category}", handler.getCategory)
	router.Get("/categories/{category}/{slug}", handler.getTool)
	router.Get("/launched/{slug}", handler.getLaunched)
	router.Get("/rankings", handler.listRankings)
	router.Get("/rankings/{period}", handler.getRanking)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListCategories())
}

// getCategory returns the category with one page of its tools.
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.Slug(request, "category", "Category")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ResolveCategory(categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	respond.Paginated(writer, &CategoryPage{
		Category: page.Category,
		Tools:    pagination.Slice(page.Tools, params),
	}, pagination.NewMeta(params.Page, params.Limit, len(page.Tools)))
}

func (handler *Handler) getTool(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.Slug(request, "category", "Tool")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	toolSlug, err := requestutil.Slug(request, "slug", "Tool")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ToolPage(categoryID, toolSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) getLaunched(writer http.ResponseWriter, request *http.Request) {
	toolSlug, err := requestutil.Slug(request, "slug", "Tool")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.ResolveLaunched(toolSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, &Page{Tool: found, Similar: handler.service.Similar(found)})
}

func (handler *Handler) listRankings(writer http.ResponseWriter, request *http.Request) {
	ranking, err := handler.service.Rankings(PeriodAllTime)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ranking)
}

func (handler *Handler) getRanking(writer http.ResponseWriter, request *http.Request) {
	ranking, err := handler.service.Rankings(Period(requestutil.Param(request, "period")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ranking)
}
