// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package news defines the news section: articles, their optional extended
content, and the tags derived from them.

Routing model:

	/news/{slug} serves both an article and a tag listing. An exact article
	slug always wins; only when no article matches is the segment matched
	against the tag slugs.

Tags are not stored entities. They are the deduplicated union of every
article's tags, recomputed each time the dataset is loaded.
*/
package news

import (
	"time"
)

// # Core Entities

// Item is one news article as listed in news/list.json.
type Item struct {
	ID             string   `json:"_id,omitempty"`
	Slug           string   `json:"slug"`
	Headline       string   `json:"headline"`
	Summary        string   `json:"summary"`
	ThumbnailImage string   `json:"thumbnail_image"`
	LastUpdated    string   `json:"last_updated"` // ISO date string
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// HasTag reports whether the article carries the exact display tag.
func (i *Item) HasTag(tag string) bool {
	for _, candidate := range i.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// PublishedAt parses LastUpdated. It returns the zero time when the value is not a date.
func (i *Item) PublishedAt() time.Time {
	return ParseDate(i.LastUpdated)
}

// Section is one heading with its paragraphs in an article's extended content.
type Section struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
}

// Detail is the optional extended content stored in news/{slug}.json.
type Detail struct {
	Subtitle        string    `json:"subtitle,omitempty"`
	TableOfContents []string  `json:"table_of_contents,omitempty"`
	Sections        []Section `json:"sections,omitempty"`
}

// Tag is a derived news tag: the display string and its URL slug.
type Tag struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"` // Number of articles carrying the tag
}

// # Read Models

// Kind tells which entity a /news/{slug} route resolved to.
type Kind string

const (
	KindArticle Kind = "article"
	KindTag     Kind = "tag"
)

// TOCEntry is a table-of-contents line with its in-page anchor.
type TOCEntry struct {
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// AnchoredSection is a [Section] carrying the anchor its TOC entry links to.
type AnchoredSection struct {
	Section
	Anchor string `json:"anchor"`
}

// Article is the payload of an article route.
type Article struct {
	Item            *Item             `json:"item"`
	Subtitle        string            `json:"subtitle"`
	HasDetail       bool              `json:"has_detail"`
	TableOfContents []TOCEntry        `json:"table_of_contents"`
	Sections        []AnchoredSection `json:"sections"`
	Related         []*Item           `json:"related"`
}

// TagPage is the payload of a tag route.
type TagPage struct {
	Tag   Tag     `json:"tag"`
	Items []*Item `json:"items"`
}

// Resolution is the result of resolving a /news/{slug} segment.
// Exactly one of Article and Tag is set, as indicated by Kind.
type Resolution struct {
	Kind    Kind     `json:"kind"`
	Article *Article `json:"article,omitempty"`
	Tag     *TagPage `json:"tag,omitempty"`
}

// # Date Parsing

// dateLayouts are tried in order when parsing LastUpdated.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO date string, returning the zero time when it is not one.
func ParseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
