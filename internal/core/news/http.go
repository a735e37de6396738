// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/opentools/internal/platform/request"
	"github.com/taibuivan/opentools/internal/platform/respond"
	"github.com/taibuivan/opentools/pkg/pagination"
)

// Handler serves the read-only news API.
type Handler struct {
	service *Service
}

// NewHandler constructs a news [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the news endpoints under the API version router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/news", handler.listNews)
	router.Get("/news/tags", handler.listTags)
	router.Get("/news/{slug}", handler.getNews)
}

// listNews returns one page of articles, newest first.
func (handler *Handler) listNews(writer http.ResponseWriter, request *http.Request) {
	items := handler.service.List()
	params := pagination.FromRequest(request)

	respond.Paginated(writer, pagination.Slice(items, params), pagination.NewMeta(params.Page, params.Limit, len(items)))
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Tags())
}

// getNews serves the shared /news/{slug} route: an article, or failing that a tag listing.
func (handler *Handler) getNews(writer http.ResponseWriter, request *http.Request) {
	value, err := requestutil.Slug(request, "slug", "News")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	resolution, err := handler.service.Resolve(value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, resolution)
}
