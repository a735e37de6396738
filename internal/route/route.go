// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package route enumerates every page the site publishes and resolves each one
to its payload.

Core Responsibility:

  - Enumeration: [Enumerate] walks the snapshot once and produces a
    deterministic [Table] (same dataset in, same table out).
  - Resolution: [Resolver.Resolve] turns a [Route] into the page payload.
  - Verification: [Verify] proves that every enumerated route resolves, so a
    published link can never 404.

Route families:

	static        /  /news  /about  /contact  /faq  /help  /privacy  /terms
	category      /{category}
	tool          /{category}/{slug}
	launched      /tool/{slug}
	ranking       /rankings  /rankings/{period}
	news-article  /news/{slug}
	news-tag      /news/{tag-slug}
*/
package route

import (
	"fmt"
	"log/slog"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/core/tool"
	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/pkg/slice"
	"github.com/taibuivan/opentools/pkg/slug"
)

// # Route Model

// Family groups routes that share a path shape and a resolver.
type Family string

const (
	FamilyStatic      Family = "static"
	FamilyCategory    Family = "category"
	FamilyTool        Family = "tool"
	FamilyLaunched    Family = "launched"
	FamilyRanking     Family = "ranking"
	FamilyNewsArticle Family = "news-article"
	FamilyNewsTag     Family = "news-tag"
)

// Families lists every family in enumeration order.
func Families() []Family {
	return []Family{
		FamilyStatic,
		FamilyCategory,
		FamilyTool,
		FamilyLaunched,
		FamilyRanking,
		FamilyNewsArticle,
		FamilyNewsTag,
	}
}

// Static page names. The home page has an empty name.
const (
	PageHome    = ""
	PageNews    = "news"
	PageAbout   = "about"
	PageContact = "contact"
	PageFAQ     = "faq"
	PageHelp    = "help"
	PagePrivacy = "privacy"
	PageTerms   = "terms"
)

// StaticPages lists every static page in enumeration order.
func StaticPages() []string {
	return []string{PageHome, PageNews, PageAbout, PageContact, PageFAQ, PageHelp, PagePrivacy, PageTerms}
}

// Route is one publishable page.
//
// Category is set for the category and tool families. Slug holds the last
// path segment: tool, article or tag slug, ranking period, or static page name.
type Route struct {
	Family   Family `json:"family"`
	Path     string `json:"path"`
	Category string `json:"category,omitempty"`
	Slug     string `json:"slug,omitempty"`

	// LastModified is the source record's last_updated, when it has one.
	LastModified string `json:"last_modified,omitempty"`
}

// Key returns the family-qualified identity of the route.
func (r Route) Key() string {
	return string(r.Family) + ":" + r.Path
}

// # Constructors

// Static returns the route of a static page.
func Static(name string) Route {
	return Route{Family: FamilyStatic, Path: "/" + name, Slug: name}
}

// Category returns the listing route of a category.
func Category(categoryID string) Route {
	return Route{Family: FamilyCategory, Path: "/" + categoryID, Category: categoryID}
}

// Tool returns the detail route of a catalogue tool.
func Tool(categoryID, toolSlug string) Route {
	return Route{Family: FamilyTool, Path: "/" + categoryID + "/" + toolSlug, Category: categoryID, Slug: toolSlug}
}

// Launched returns the detail route of a "launched today" tool.
func Launched(toolSlug string) Route {
	return Route{Family: FamilyLaunched, Path: "/tool/" + toolSlug, Slug: toolSlug}
}

// Ranking returns the route of a ranking view. All-time lives at /rankings.
func Ranking(period tool.Period) Route {
	if period == tool.PeriodAllTime {
		return Route{Family: FamilyRanking, Path: "/rankings", Slug: string(period)}
	}
	return Route{Family: FamilyRanking, Path: "/rankings/" + string(period), Slug: string(period)}
}

// NewsArticle returns the route of a news article.
func NewsArticle(articleSlug string) Route {
	return Route{Family: FamilyNewsArticle, Path: "/news/" + articleSlug, Slug: articleSlug}
}

// NewsTag returns the route of a news tag listing.
func NewsTag(tagSlug string) Route {
	return Route{Family: FamilyNewsTag, Path: "/news/" + tagSlug, Slug: tagSlug}
}

// # Table

// Table is the ordered, duplicate-free list of every route.
type Table struct {
	routes []Route
	byPath map[string]int
}

// Routes returns every route in enumeration order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Paths returns every route path in enumeration order.
func (t *Table) Paths() []string {
	return slice.Map(t.routes, func(r Route) string { return r.Path })
}

// Lookup returns the route published at path.
func (t *Table) Lookup(path string) (Route, bool) {
	index, ok := t.byPath[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[index], true
}

// ByFamily returns the routes of one family in enumeration order.
func (t *Table) ByFamily(family Family) []Route {
	return slice.Filter(t.routes, func(r Route) bool { return r.Family == family })
}

// Counts returns the number of routes per family. Every family is present.
func (t *Table) Counts() map[Family]int {
	counts := make(map[Family]int, len(Families()))
	for _, family := range Families() {
		counts[family] = 0
	}
	for _, r := range t.routes {
		counts[r.Family]++
	}
	return counts
}

// add appends a route, refusing a second route at the same path.
func (t *Table) add(r Route) error {
	if existing, dup := t.byPath[r.Path]; dup {
		return apperr.DataIntegrity(
			fmt.Sprintf("route: %s and %s both publish %q", t.routes[existing].Family, r.Family, r.Path), nil)
	}
	t.byPath[r.Path] = len(t.routes)
	t.routes = append(t.routes, r)
	return nil
}

// # Enumeration

// Source is the read-only dataset view routes are enumerated from.
type Source interface {
	tool.Repository
	news.Repository
}

/*
Enumerate produces the route table of a dataset.

Description: Families are emitted in [Families] order and, within a family,
in dataset order (categories, then each category's tools, then launched tools,
ranking periods, articles). Tags are emitted in ascending display order.

Tools without a slug get no route and are logged. A tag whose slug equals an
article slug is shadowed by the article and gets no route of its own.

Returns:
  - *Table: The route table
  - error: DATA_INTEGRITY if two routes would share a path
*/
func Enumerate(source Source, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	table := &Table{byPath: make(map[string]int)}

	for _, name := range StaticPages() {
		if err := table.add(Static(name)); err != nil {
			return nil, err
		}
	}

	categories := source.Categories()
	for _, category := range categories {
		if err := table.add(Category(category.ID)); err != nil {
			return nil, err
		}
	}

	for _, category := range categories {
		for _, item := range source.ToolsInCategory(category.ID) {
			if !item.HasSlug() {
				logger.Warn("tool_skipped_missing_slug",
					slog.String("category", category.ID),
					slog.String("tool", item.Name),
					slog.String("id", item.ID),
				)
				continue
			}
			if !slug.IsSegment(item.Slug) {
				logger.Warn("tool_skipped_invalid_slug",
					slog.String("category", category.ID),
					slog.String("tool", item.Name),
					slog.String("slug", item.Slug),
				)
				continue
			}

			r := Tool(category.ID, item.Slug)
			r.LastModified = item.LastUpdated
			if err := table.add(r); err != nil {
				return nil, err
			}
		}
	}

	for _, item := range source.Launched() {
		if !item.HasSlug() {
			logger.Warn("launched_tool_skipped_missing_slug",
				slog.String("tool", item.Name),
				slog.String("id", item.ID),
			)
			continue
		}
		if !slug.IsSegment(item.Slug) {
			logger.Warn("launched_tool_skipped_invalid_slug",
				slog.String("tool", item.Name),
				slog.String("slug", item.Slug),
			)
			continue
		}

		r := Launched(item.Slug)
		r.LastModified = item.LastUpdated
		if err := table.add(r); err != nil {
			return nil, err
		}
	}

	for _, period := range tool.Periods() {
		if err := table.add(Ranking(period)); err != nil {
			return nil, err
		}
	}

	for _, item := range source.Items() {
		r := NewsArticle(item.Slug)
		r.LastModified = item.LastUpdated
		if err := table.add(r); err != nil {
			return nil, err
		}
	}

	for _, name := range source.TagNames() {
		tagSlug := slug.Normalize(name)
		if _, shadowed := source.ItemBySlug(tagSlug); shadowed {
			logger.Debug("news_tag_route_shadowed", slog.String("tag", name), slog.String("slug", tagSlug))
			continue
		}
		if err := table.add(NewsTag(tagSlug)); err != nil {
			return nil, err
		}
	}

	return table, nil
}
