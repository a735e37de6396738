// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitemap

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/opentools/internal/platform/respond"
	"github.com/taibuivan/opentools/internal/route"
)

// Handler serves the pre-rendered sitemap.xml and robots.txt.
type Handler struct {
	sitemapXML []byte
	robotsTXT  []byte
}

// NewHandler renders both documents once; the route table never changes afterwards.
func NewHandler(table *route.Table, baseURL string, generated time.Time) (*Handler, error) {
	sitemapXML, err := Render(table, baseURL, generated)
	if err != nil {
		return nil, err
	}

	return &Handler{
		sitemapXML: sitemapXML,
		robotsTXT:  Robots(DefaultRules(), baseURL),
	}, nil
}

// RegisterRoutes mounts the documents at the site root.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/sitemap.xml", handler.getSitemap)
	router.Get("/robots.txt", handler.getRobots)
}

func (handler *Handler) getSitemap(writer http.ResponseWriter, request *http.Request) {
	respond.Raw(writer, "application/xml; charset=utf-8", handler.sitemapXML)
}

func (handler *Handler) getRobots(writer http.ResponseWriter, request *http.Request) {
	respond.Raw(writer, "text/plain; charset=utf-8", handler.robotsTXT)
}
