// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool

import (
	"slices"
	"sort"

	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/internal/platform/constants"
)

// # Service Layer

// Service answers every catalogue question a page needs.
// It is a thin, stateless layer over a [Repository] and safe for concurrent use.
type Service struct {
	repo Repository
}

// NewService constructs a new [Service] over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// # Category Lookups

// ListCategories returns every category in dataset order.
func (service *Service) ListCategories() []*Category {
	return service.repo.Categories()
}

/*
ResolveCategory returns a category and the tools listed under it.

Parameters:
  - categoryID: string (Category.ID, the first path segment)

Returns:
  - *CategoryPage: The category with its tools in dataset order
  - error: NOT_FOUND if the id is unknown
*/
func (service *Service) ResolveCategory(categoryID string) (*CategoryPage, error) {
	category, ok := service.repo.Category(categoryID)
	if !ok {
		return nil, apperr.NotFound("Category")
	}

	return &CategoryPage{
		Category: category,
		Tools:    service.repo.ToolsInCategory(categoryID),
	}, nil
}

// # Tool Lookups

/*
ResolveTool finds the tool addressed by a (category, slug) route.

Description: The category is resolved first so a slug that exists in a
different category never matches. Slug comparison is exact.

Parameters:
  - categoryID: string (Category.ID)
  - toolSlug: string (Tool.Slug)

Returns:
  - *Tool: The tool record
  - error: NOT_FOUND if either segment does not resolve
*/
func (service *Service) ResolveTool(categoryID, toolSlug string) (*Tool, error) {
	if _, ok := service.repo.Category(categoryID); !ok {
		return nil, apperr.NotFound("Tool")
	}

	if toolSlug == "" {
		return nil, apperr.NotFound("Tool")
	}

	for _, candidate := range service.repo.ToolsInCategory(categoryID) {
		if candidate.Slug == toolSlug {
			return candidate, nil
		}
	}

	return nil, apperr.NotFound("Tool")
}

// ToolPage resolves a tool route together with its category and similar tools.
func (service *Service) ToolPage(categoryID, toolSlug string) (*Page, error) {
	found, err := service.ResolveTool(categoryID, toolSlug)
	if err != nil {
		return nil, err
	}

	category, _ := service.repo.Category(categoryID)
	return &Page{
		Tool:     found,
		Category: category,
		Similar:  service.Similar(found),
	}, nil
}

// ResolveLaunched finds a "launched today" tool by slug.
func (service *Service) ResolveLaunched(toolSlug string) (*Tool, error) {
	if toolSlug == "" {
		return nil, apperr.NotFound("Tool")
	}

	for _, candidate := range service.repo.Launched() {
		if candidate.Slug == toolSlug {
			return candidate, nil
		}
	}

	return nil, apperr.NotFound("Tool")
}

// # Cross-References

/*
Similar resolves a tool's similar_tools references against the whole catalogue.

Description: Reference order is preserved. Ids that no longer resolve (the
referenced tool was removed from the dataset) are dropped silently, as are
self-references and repeated ids. The result is capped at
[constants.SimilarToolsLimit] so callers always receive a bounded list.
*/
func (service *Service) Similar(source *Tool) []*Tool {
	if source == nil || len(source.SimilarTools) == 0 {
		return []*Tool{}
	}

	result := make([]*Tool, 0, min(len(source.SimilarTools), constants.SimilarToolsLimit))
	seen := make(map[string]struct{}, len(source.SimilarTools))

	for _, reference := range source.SimilarTools {
		if len(result) == constants.SimilarToolsLimit {
			break
		}
		if reference.ID == "" || reference.ID == source.ID {
			continue
		}
		if _, dup := seen[reference.ID]; dup {
			continue
		}

		match, ok := service.repo.ToolByID(reference.ID)
		if !ok {
			continue
		}

		seen[reference.ID] = struct{}{}
		result = append(result, match)
	}

	return result
}

// Recommended returns the first n tools of the flattened catalogue.
func (service *Service) Recommended(n int) []*Tool {
	all := service.repo.AllTools()
	if n < 0 || n > len(all) {
		n = len(all)
	}
	return slices.Clone(all[:n])
}

// # Rankings

// Period selects one of the ranking views.
type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodThisMonth Period = "this-month"
	PeriodThisWeek  Period = "this-week"
	PeriodFree      Period = "free"
	PeriodPaid      Period = "paid"
)

// Periods lists every ranking view in display order.
func Periods() []Period {
	return []Period{PeriodAllTime, PeriodThisMonth, PeriodThisWeek, PeriodFree, PeriodPaid}
}

// IsValid reports whether p is a known ranking [Period].
func (p Period) IsValid() bool {
	return slices.Contains(Periods(), p)
}

// Limit returns how many tools the ranking view shows.
func (p Period) Limit() int {
	switch p {
	case PeriodAllTime:
		return 20
	case PeriodFree, PeriodPaid:
		return 15
	default:
		return 10
	}
}

// Ranking is the payload of a ranking route.
type Ranking struct {
	Period Period  `json:"period"`
	Tools  []*Tool `json:"tools"`
}

/*
Rankings sorts the flattened catalogue for one ranking view.

Description: all-time sorts by favouriteCount, this-month by monthFavourites,
this-week by todayFavourites. The free and paid views filter on pricing plans
and then sort by favouriteCount. Ties keep dataset order.

Returns:
  - *Ranking: At most [Period.Limit] tools
  - error: NOT_FOUND for an unknown period
*/
func (service *Service) Rankings(period Period) (*Ranking, error) {
	if !period.IsValid() {
		return nil, apperr.NotFound("Ranking")
	}

	candidates := slices.Clone(service.repo.AllTools())
	score := func(t *Tool) int { return t.FavouriteCount }

	switch period {
	case PeriodThisMonth:
		score = func(t *Tool) int { return t.MonthFavourites }
	case PeriodThisWeek:
		score = func(t *Tool) int { return t.TodayFavourites }
	case PeriodFree:
		candidates = slices.DeleteFunc(candidates, func(t *Tool) bool { return !t.IsFree() })
	case PeriodPaid:
		candidates = slices.DeleteFunc(candidates, func(t *Tool) bool { return !t.IsPaid() })
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})

	if len(candidates) > period.Limit() {
		candidates = candidates[:period.Limit()]
	}

	return &Ranking{Period: period, Tools: candidates}, nil
}
