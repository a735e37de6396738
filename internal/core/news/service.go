// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"slices"
	"sort"

	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/internal/platform/constants"
	"github.com/taibuivan/opentools/pkg/slug"
)

// # Service Layer

// Service resolves news routes and assembles their payloads.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	repo            Repository
	defaultSubtitle string
}

// NewService constructs a news [Service].
// defaultSubtitle is shown on articles that have no detail file.
func NewService(repo Repository, defaultSubtitle string) *Service {
	if defaultSubtitle == "" {
		defaultSubtitle = constants.DefaultNewsSubtitle
	}
	return &Service{repo: repo, defaultSubtitle: defaultSubtitle}
}

// # Listings

// List returns every article, newest first. Articles with an unparseable date sort last.
func (service *Service) List() []*Item {
	items := slices.Clone(service.repo.Items())
	sortNewestFirst(items)
	return items
}

// Tags returns every derived tag with its slug and article count, ordered by display name.
func (service *Service) Tags() []Tag {
	names := service.repo.TagNames()
	items := service.repo.Items()

	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		count := 0
		for _, item := range items {
			if item.HasTag(name) {
				count++
			}
		}
		tags = append(tags, Tag{Name: name, Slug: slug.Normalize(name), Count: count})
	}

	return tags
}

// # Resolution

/*
Resolve maps a /news/{slug} segment onto an article or a tag listing.

Description: The lookup order is fixed. An exact article slug match is tried
first; only when it fails is the segment reverse-matched against the tag union
with [slug.ToDisplay]. An article therefore always shadows a tag with the same slug.

Parameters:
  - value: string (the path segment)

Returns:
  - *Resolution: Kind "article" or "tag" with the matching payload
  - error: NOT_FOUND when neither namespace matches
*/
func (service *Service) Resolve(value string) (*Resolution, error) {
	if article, err := service.ResolveArticle(value); err == nil {
		return &Resolution{Kind: KindArticle, Article: article}, nil
	}

	if page, err := service.ResolveTag(value); err == nil {
		return &Resolution{Kind: KindTag, Tag: page}, nil
	}

	return nil, apperr.NotFound("News")
}

/*
ResolveArticle assembles the article page for an exact slug.

Description: Extended content comes from the detail map built at load time.
A missing detail entry yields the default subtitle and empty table of contents
and sections. Related articles are the first [constants.RelatedNewsLimit] other
articles in dataset order, then sorted newest first.
*/
func (service *Service) ResolveArticle(value string) (*Article, error) {
	item, ok := service.repo.ItemBySlug(value)
	if !ok {
		return nil, apperr.NotFound("Article")
	}

	detail, hasDetail := service.repo.Detail(item.Slug)

	subtitle := detail.Subtitle
	if subtitle == "" {
		subtitle = service.defaultSubtitle
	}

	toc := make([]TOCEntry, 0, len(detail.TableOfContents))
	for _, title := range detail.TableOfContents {
		toc = append(toc, TOCEntry{Title: title, Anchor: slug.Anchor(title)})
	}

	sections := make([]AnchoredSection, 0, len(detail.Sections))
	for _, section := range detail.Sections {
		sections = append(sections, AnchoredSection{Section: section, Anchor: slug.Anchor(section.Heading)})
	}

	return &Article{
		Item:            item,
		Subtitle:        subtitle,
		HasDetail:       hasDetail,
		TableOfContents: toc,
		Sections:        sections,
		Related:         service.related(item),
	}, nil
}

// ResolveTag assembles the tag listing for a tag slug.
func (service *Service) ResolveTag(value string) (*TagPage, error) {
	name, ok := slug.ToDisplay(value, service.repo.TagNames())
	if !ok {
		return nil, apperr.NotFound("Tag")
	}

	var items []*Item
	for _, item := range service.repo.Items() {
		if item.HasTag(name) {
			items = append(items, item)
		}
	}

	return &TagPage{
		Tag:   Tag{Name: name, Slug: slug.Normalize(name), Count: len(items)},
		Items: items,
	}, nil
}

// related returns up to RelatedNewsLimit other articles, newest first.
func (service *Service) related(current *Item) []*Item {
	result := make([]*Item, 0, constants.RelatedNewsLimit)
	for _, candidate := range service.repo.Items() {
		if len(result) == constants.RelatedNewsLimit {
			break
		}
		if candidate.Slug != current.Slug {
			result = append(result, candidate)
		}
	}

	sortNewestFirst(result)
	return result
}

// sortNewestFirst orders items by date descending, undated items last, ties in input order.
func sortNewestFirst(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i].PublishedAt(), items[j].PublishedAt()
		if left.IsZero() || right.IsZero() {
			return !left.IsZero() && right.IsZero()
		}
		return left.After(right)
	})
}
