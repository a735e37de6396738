// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package route

import (
	"errors"
	"fmt"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/core/tool"
	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/internal/platform/constants"
	"github.com/taibuivan/opentools/internal/platform/metrics"
)

// # Page Payloads

// Page is a resolved route with its payload.
type Page struct {
	Route Route `json:"route"`
	Data  any   `json:"data"`
}

// HomePage is the payload of the home page.
type HomePage struct {
	Categories  []*tool.Category `json:"categories"`
	Recommended []*tool.Tool     `json:"recommended_tools"`
	LatestNews  []*news.Item     `json:"latest_news"`
}

// NewsIndexPage is the payload of the /news listing.
type NewsIndexPage struct {
	Items []*news.Item `json:"items"`
	Tags  []news.Tag   `json:"tags"`
}

// StaticPage is the payload of a content-only page (about, terms, ...).
type StaticPage struct {
	Name string `json:"name"`
}

// ArticlePage is the payload of a news article.
type ArticlePage struct {
	*news.Article
	RecommendedTools []*tool.Tool `json:"recommended_tools"`
}

// # Resolver

// Resolver turns routes into page payloads. It is stateless and safe for concurrent use.
type Resolver struct {
	tools   *tool.Service
	news    *news.Service
	metrics *metrics.Metrics
}

// NewResolver constructs a [Resolver]. m may be nil.
func NewResolver(tools *tool.Service, newsService *news.Service, m *metrics.Metrics) *Resolver {
	return &Resolver{tools: tools, news: newsService, metrics: m}
}

/*
Resolve returns the payload of one route.

Parameters:
  - r: Route (typically from a [Table])

Returns:
  - *Page: The route and its payload
  - error: NOT_FOUND if the route does not address an existing entity
*/
func (resolver *Resolver) Resolve(r Route) (*Page, error) {
	data, err := resolver.resolve(r)

	switch {
	case err == nil:
		resolver.metrics.ObserveResolution(string(r.Family), "ok")
	case apperr.IsNotFound(err):
		resolver.metrics.ObserveResolution(string(r.Family), "not_found")
	default:
		resolver.metrics.ObserveResolution(string(r.Family), "error")
	}

	if err != nil {
		return nil, err
	}
	return &Page{Route: r, Data: data}, nil
}

func (resolver *Resolver) resolve(r Route) (any, error) {
	switch r.Family {
	case FamilyStatic:
		return resolver.static(r.Slug)

	case FamilyCategory:
		return resolver.tools.ResolveCategory(r.Category)

	case FamilyTool:
		return resolver.tools.ToolPage(r.Category, r.Slug)

	case FamilyLaunched:
		found, err := resolver.tools.ResolveLaunched(r.Slug)
		if err != nil {
			return nil, err
		}
		return &tool.Page{Tool: found, Similar: resolver.tools.Similar(found)}, nil

	case FamilyRanking:
		return resolver.tools.Rankings(tool.Period(r.Slug))

	case FamilyNewsArticle, FamilyNewsTag:
		return resolver.newsPage(r)
	}

	return nil, apperr.NotFound("Route")
}

// static builds the payload of a static page.
func (resolver *Resolver) static(name string) (any, error) {
	switch name {
	case PageHome:
		return &HomePage{
			Categories:  resolver.tools.ListCategories(),
			Recommended: resolver.tools.Recommended(constants.RecommendedToolsLimit),
			LatestNews:  headOf(resolver.news.List(), constants.HomeNewsLimit),
		}, nil
	case PageNews:
		return &NewsIndexPage{Items: resolver.news.List(), Tags: resolver.news.Tags()}, nil
	case PageAbout, PageContact, PageFAQ, PageHelp, PagePrivacy, PageTerms:
		return &StaticPage{Name: name}, nil
	}
	return nil, apperr.NotFound("Page")
}

// newsPage resolves the shared /news/{slug} route and checks it landed on the expected family.
func (resolver *Resolver) newsPage(r Route) (any, error) {
	resolution, err := resolver.news.Resolve(r.Slug)
	if err != nil {
		return nil, err
	}

	switch {
	case resolution.Kind == news.KindArticle && r.Family == FamilyNewsArticle:
		return &ArticlePage{
			Article:          resolution.Article,
			RecommendedTools: resolver.tools.Recommended(constants.RecommendedToolsLimit),
		}, nil
	case resolution.Kind == news.KindTag && r.Family == FamilyNewsTag:
		return resolution.Tag, nil
	}

	return nil, apperr.NotFound("News")
}

// # Verification

// Failure is one route that did not resolve.
type Failure struct {
	Route Route
	Err   error
}

/*
Verify resolves every route of the table.

Returns:
  - error: nil when every route resolves, otherwise a DATA_INTEGRITY error
    naming the first failure and the failure count, wrapping all of them
*/
func Verify(table *Table, resolver *Resolver) error {
	var failures []Failure
	for _, r := range table.Routes() {
		if _, err := resolver.Resolve(r); err != nil {
			failures = append(failures, Failure{Route: r, Err: err})
		}
	}

	if len(failures) == 0 {
		return nil
	}

	causes := make([]error, 0, len(failures))
	for _, failure := range failures {
		causes = append(causes, fmt.Errorf("%s %s: %w", failure.Route.Family, failure.Route.Path, failure.Err))
	}

	first := failures[0].Route
	return apperr.DataIntegrity(
		fmt.Sprintf("route: %d of %d routes do not resolve (first: %s)", len(failures), table.Len(), first.Path),
		errors.Join(causes...),
	)
}

// headOf returns at most n leading items.
func headOf[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
