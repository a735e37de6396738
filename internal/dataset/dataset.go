// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dataset loads the bundled JSON data into an immutable [Snapshot].

Architecture:

  - Single pass: every file is read once at process start ([Loader.Load]).
  - All-or-nothing: a missing required file, a path-breaking or duplicate
    slug, or a slug collision aborts loading; no partial snapshot is ever
    returned. Problems confined to one record are logged and stay local.
  - Immutable: after [Assemble] returns, nothing in the snapshot changes, so it
    can be shared by any number of goroutines without locking.

The snapshot implements both [tool.Repository] and [news.Repository].
*/
package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/core/tool"
	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/internal/platform/constants"
	"github.com/taibuivan/opentools/internal/platform/validate"
	"github.com/taibuivan/opentools/pkg/slug"
)

// reservedSegments are first path segments owned by built-in pages.
// A category id equal to one of them would shadow or be shadowed by that page.
var reservedSegments = map[string]struct{}{
	"news":        {},
	"rankings":    {},
	"tool":        {},
	"tools":       {},
	"about":       {},
	"contact":     {},
	"faq":         {},
	"help":        {},
	"privacy":     {},
	"terms":       {},
	"api":         {},
	"admin":       {},
	"sitemap.xml": {},
	"robots.txt":  {},
}

// IsReserved reports whether segment is a first path segment owned by a built-in page.
func IsReserved(segment string) bool {
	_, ok := reservedSegments[segment]
	return ok
}

// # Sources

// Sources is the raw, decoded content of every dataset file.
type Sources struct {
	Categories []tool.Category
	Tools      map[string][]tool.Tool // Keyed by category id
	News       []news.Item
	Details    map[string]news.Detail // Keyed by article slug
	Launched   []tool.Tool
}

// # Snapshot

// Snapshot is the validated, immutable, in-memory dataset.
type Snapshot struct {
	categories      []*tool.Category
	categoryIndex   map[string]*tool.Category
	toolsByCategory map[string][]*tool.Tool
	allTools        []*tool.Tool
	toolIndex       map[string]*tool.Tool
	launched        []*tool.Tool

	items     []*news.Item
	itemIndex map[string]*news.Item
	details   map[string]news.Detail
	tagNames  []string
}

// Stats summarises a snapshot for logs and metrics.
type Stats struct {
	Categories int
	Tools      int
	Launched   int
	Articles   int
	Details    int
	Tags       int
}

var (
	_ tool.Repository = (*Snapshot)(nil)
	_ news.Repository = (*Snapshot)(nil)
)

/*
Assemble validates raw sources and builds a [Snapshot].

Fatal (returned as an error):
  - a category without a valid slug id, a duplicate id, or an id reserved by a built-in page
  - two category names or two news tags that normalize to the same slug
  - a tool list for an unknown category id, or a category without a tool list
  - a tool whose category name contradicts the list it appears in
  - a malformed or duplicate tool slug within a category, or news slug

Recoverable (logged, record kept):
  - a tool without slug (it simply gets no route)
  - a tool without id or with an id already used elsewhere (not addressable by reference)
  - a detail file for an unknown article, or a tag shadowed by an article slug
*/
func Assemble(sources Sources, logger *slog.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	snapshot := &Snapshot{
		categoryIndex:   make(map[string]*tool.Category, len(sources.Categories)),
		toolsByCategory: make(map[string][]*tool.Tool, len(sources.Categories)),
		toolIndex:       make(map[string]*tool.Tool),
		itemIndex:       make(map[string]*news.Item, len(sources.News)),
		details:         make(map[string]news.Detail, len(sources.Details)),
	}

	if err := snapshot.addCategories(sources.Categories); err != nil {
		return nil, err
	}
	if err := snapshot.addTools(sources.Tools, logger); err != nil {
		return nil, err
	}
	if err := snapshot.addLaunched(sources.Launched); err != nil {
		return nil, err
	}
	if err := snapshot.addNews(sources.News, logger); err != nil {
		return nil, err
	}
	snapshot.addDetails(sources.Details, logger)

	return snapshot, nil
}

// addCategories validates categories and guards the id and name namespaces.
func (s *Snapshot) addCategories(categories []tool.Category) error {
	names := slug.NewRegistry("category")

	for i := range categories {
		category := categories[i]

		v := &validate.Validator{}
		err := v.
			Required("id", category.ID).
			Slug("id", category.ID).
			MaxLen("id", category.ID, constants.MaxSlugLength).
			Required("category", category.Name).
			Custom("id", IsReserved(category.ID), "Collides with a built-in page").
			Err()
		if err != nil {
			return apperr.DataIntegrity(fmt.Sprintf("categories: invalid category #%d (%q)", i, category.ID), err)
		}

		if _, dup := s.categoryIndex[category.ID]; dup {
			return apperr.DataIntegrity(fmt.Sprintf("categories: duplicate category id %q", category.ID), nil)
		}
		if previous, taken := names.Lookup(slug.Normalize(category.Name)); taken && previous == category.Name {
			return apperr.DataIntegrity(fmt.Sprintf("categories: duplicate category name %q", category.Name), nil)
		}
		if err := registerSlug(names, category.Name); err != nil {
			return err
		}

		s.categories = append(s.categories, &category)
		s.categoryIndex[category.ID] = &category
	}

	return nil
}

// addTools attaches every tool list to its category and builds the id index.
func (s *Snapshot) addTools(lists map[string][]tool.Tool, logger *slog.Logger) error {
	for categoryID := range lists {
		if _, ok := s.categoryIndex[categoryID]; !ok {
			return apperr.DataIntegrity(fmt.Sprintf("tools: unknown category id %q", categoryID), nil)
		}
	}

	for _, category := range s.categories {
		raw, ok := lists[category.ID]
		if !ok {
			return apperr.DataIntegrity(fmt.Sprintf("tools: no tool list for category %q", category.ID), nil)
		}

		slugs := make(map[string]struct{}, len(raw))
		tools := make([]*tool.Tool, 0, len(raw))

		for i := range raw {
			record := raw[i]
			normalizeTool(&record, logger)

			if record.Category == "" {
				record.Category = category.Name
			}
			if record.Category != category.Name {
				return apperr.DataIntegrity(fmt.Sprintf("tools: %s #%d (%q) lists category %q, expected %q",
					category.ID, i, record.Name, record.Category, category.Name), nil)
			}
			record.CategorySlug = category.ID

			if err := checkToolSlug(category.ID, i, &record, slugs); err != nil {
				return err
			}

			tools = append(tools, &record)
			s.indexTool(&record, category.ID, logger)
		}

		category.Count = len(tools)
		s.toolsByCategory[category.ID] = tools
		s.allTools = append(s.allTools, tools...)
	}

	return nil
}

// addLaunched adds the "launched today" tools. They are not part of the id index.
func (s *Snapshot) addLaunched(raw []tool.Tool) error {
	slugs := make(map[string]struct{}, len(raw))
	byName := make(map[string]string, len(s.categories))
	for _, category := range s.categories {
		byName[category.Name] = category.ID
	}

	for i := range raw {
		record := raw[i]
		normalizeTool(&record, nil)

		if record.CategorySlug == "" {
			record.CategorySlug = byName[record.Category]
		}
		if err := checkToolSlug("launched-today", i, &record, slugs); err != nil {
			return err
		}

		s.launched = append(s.launched, &record)
	}

	return nil
}

// addNews validates articles and derives the tag union.
func (s *Snapshot) addNews(items []news.Item, logger *slog.Logger) error {
	tags := slug.NewRegistry("news tag")

	for i := range items {
		item := items[i]

		v := &validate.Validator{}
		err := v.
			Required("slug", item.Slug).
			Custom("slug", slug.BreaksPath(item.Slug), "Must not contain slashes or whitespace").
			Err()
		if err != nil {
			return apperr.DataIntegrity(fmt.Sprintf("news: invalid article #%d (%q)", i, item.Slug), err)
		}
		if !slug.IsSegment(item.Slug) {
			logger.Warn("news_article_skipped_invalid_slug",
				slog.Int("index", i),
				slog.String("slug", item.Slug),
			)
			continue
		}
		if _, dup := s.itemIndex[item.Slug]; dup {
			return apperr.DataIntegrity(fmt.Sprintf("news: duplicate article slug %q", item.Slug), nil)
		}

		for _, tag := range item.Tags {
			if strings.TrimSpace(tag) == "" {
				continue
			}
			if err := registerSlug(tags, tag); err != nil {
				return err
			}
		}

		s.items = append(s.items, &item)
		s.itemIndex[item.Slug] = &item
	}

	for _, tagSlug := range tags.Slugs() {
		name, _ := tags.Lookup(tagSlug)
		s.tagNames = append(s.tagNames, name)

		if _, shadowed := s.itemIndex[tagSlug]; shadowed {
			logger.Warn("news_tag_shadowed_by_article",
				slog.String("tag", name),
				slog.String("slug", tagSlug),
			)
		}
	}
	sort.Strings(s.tagNames)

	return nil
}

// addDetails keeps the detail entries that belong to a known article.
func (s *Snapshot) addDetails(details map[string]news.Detail, logger *slog.Logger) {
	for articleSlug, detail := range details {
		if _, ok := s.itemIndex[articleSlug]; !ok {
			logger.Warn("news_detail_orphaned", slog.String("slug", articleSlug))
			continue
		}
		s.details[articleSlug] = detail
	}
}

// indexTool records a tool for id lookups; the first occurrence of an id wins.
func (s *Snapshot) indexTool(record *tool.Tool, categoryID string, logger *slog.Logger) {
	if record.ID == "" {
		logger.Warn("tool_without_id",
			slog.String("category", categoryID),
			slog.String("tool", record.Name),
		)
		return
	}

	if existing, dup := s.toolIndex[record.ID]; dup {
		logger.Warn("tool_duplicate_id",
			slog.String("id", record.ID),
			slog.String("kept", existing.CategorySlug+"/"+existing.Slug),
			slog.String("ignored", categoryID+"/"+record.Slug),
		)
		return
	}

	s.toolIndex[record.ID] = record
}

// normalizeTool trims the slug and maps pricing frequencies onto the known set.
func normalizeTool(record *tool.Tool, logger *slog.Logger) {
	record.Slug = strings.TrimSpace(record.Slug)

	if len(record.PricingPlans) == 0 {
		return
	}

	plans := slices.Clone(record.PricingPlans)
	for i := range plans {
		frequency, known := tool.ParseCostFrequency(string(plans[i].CostFrequency))
		if !known && logger != nil {
			logger.Debug("pricing_frequency_unrecognised",
				slog.String("tool", record.Name),
				slog.String("value", string(plans[i].CostFrequency)),
			)
		}
		plans[i].CostFrequency = frequency
	}
	record.PricingPlans = plans
}

// checkToolSlug rejects duplicate slugs and slugs that would break a URL path.
// Empty slugs and other non-canonical slugs are left to route enumeration.
func checkToolSlug(list string, index int, record *tool.Tool, seen map[string]struct{}) error {
	if record.Slug == "" {
		return nil
	}

	v := &validate.Validator{}
	if err := v.Custom("slug", slug.BreaksPath(record.Slug), "Must not contain slashes or whitespace").Err(); err != nil {
		return apperr.DataIntegrity(fmt.Sprintf("tools: %s #%d (%q) has an invalid slug", list, index, record.Name), err)
	}

	if _, dup := seen[record.Slug]; dup {
		return apperr.DataIntegrity(fmt.Sprintf("tools: duplicate slug %q in %s", record.Slug, list), nil)
	}
	seen[record.Slug] = struct{}{}

	return nil
}

// registerSlug adds display to registry and converts slug errors to fatal data errors.
func registerSlug(registry *slug.Registry, display string) error {
	_, err := registry.Add(display)
	if err == nil {
		return nil
	}

	var collision *slug.CollisionError
	if errors.As(err, &collision) {
		return apperr.SlugCollision(collision.Namespace, collision.First, collision.Second, collision.Slug, err)
	}

	return apperr.DataIntegrity("unusable display string", err)
}

// # Catalogue Access (tool.Repository)

// Categories returns every category in dataset order.
func (s *Snapshot) Categories() []*tool.Category {
	return slices.Clone(s.categories)
}

// Category returns the category with the given id.
func (s *Snapshot) Category(id string) (*tool.Category, bool) {
	category, ok := s.categoryIndex[id]
	return category, ok
}

// ToolsInCategory returns the tools listed under a category.
func (s *Snapshot) ToolsInCategory(categoryID string) []*tool.Tool {
	return slices.Clone(s.toolsByCategory[categoryID])
}

// AllTools returns every category's tools concatenated in category order.
func (s *Snapshot) AllTools() []*tool.Tool {
	return slices.Clone(s.allTools)
}

// ToolByID returns the first tool carrying the id.
func (s *Snapshot) ToolByID(id string) (*tool.Tool, bool) {
	found, ok := s.toolIndex[id]
	return found, ok
}

// Launched returns the "launched today" tools.
func (s *Snapshot) Launched() []*tool.Tool {
	return slices.Clone(s.launched)
}

// # News Access (news.Repository)

// Items returns every article in dataset order.
func (s *Snapshot) Items() []*news.Item {
	return slices.Clone(s.items)
}

// ItemBySlug returns the article with the exact slug.
func (s *Snapshot) ItemBySlug(articleSlug string) (*news.Item, bool) {
	item, ok := s.itemIndex[articleSlug]
	return item, ok
}

// Detail returns the extended content of an article, if it has any.
func (s *Snapshot) Detail(articleSlug string) (news.Detail, bool) {
	detail, ok := s.details[articleSlug]
	return detail, ok
}

// TagNames returns every distinct display tag in ascending order.
func (s *Snapshot) TagNames() []string {
	return slices.Clone(s.tagNames)
}

// Stats returns record counts.
func (s *Snapshot) Stats() Stats {
	return Stats{
		Categories: len(s.categories),
		Tools:      len(s.allTools),
		Launched:   len(s.launched),
		Articles:   len(s.items),
		Details:    len(s.details),
		Tags:       len(s.tagNames),
	}
}
