// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tool defines the AI tool catalogue: categories, tool records and
pricing plans, plus the read-only lookups the site pages are built from.

Core Responsibility:

  - Catalogue: Categories and the tools listed under each of them.
  - Resolution: Mapping (category, slug) path segments to a single [Tool].
  - Cross-references: Resolving "similar tools" id lists against the whole catalogue.
  - Rankings: Sorting the flattened catalogue by stored favourite counters.

Tool records are created by an external data import and never mutated here.
*/
package tool

import (
	"strings"

	"github.com/taibuivan/opentools/pkg/pointer"
)

// # Domain Enums

// CostFrequency describes how often a [PricingPlan] is billed.
type CostFrequency string

const (
	CostFrequencyMonthly CostFrequency = "monthly"
	CostFrequencyYearly  CostFrequency = "yearly"
	CostFrequencyOneTime CostFrequency = "one-time"
	CostFrequencyOther   CostFrequency = "other"
	CostFrequencyCustom  CostFrequency = "custom"
)

// IsValid reports whether f is a recognised [CostFrequency] value.
func (f CostFrequency) IsValid() bool {
	switch f {
	case
		CostFrequencyMonthly,
		CostFrequencyYearly,
		CostFrequencyOneTime,
		CostFrequencyOther,
		CostFrequencyCustom:
		return true
	}
	return false
}

// ParseCostFrequency maps a raw dataset value onto a [CostFrequency].
// The second result is false when the value was not recognised and
// [CostFrequencyOther] was substituted.
func ParseCostFrequency(raw string) (CostFrequency, bool) {
	value := CostFrequency(strings.ToLower(strings.TrimSpace(raw)))
	switch value {
	case "month":
		return CostFrequencyMonthly, true
	case "year", "annual", "annually":
		return CostFrequencyYearly, true
	case "one time", "onetime", "one_time", "lifetime":
		return CostFrequencyOneTime, true
	}
	if value.IsValid() {
		return value, true
	}
	return CostFrequencyOther, false
}

// # Core Entities

// Category is a named grouping of tools. ID doubles as the URL slug.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"category"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count,omitempty"` // Number of tools, filled in by the loader
}

// PricingPlan is one pricing tier of a [Tool].
type PricingPlan struct {
	ID            string        `json:"_id,omitempty"`
	Title         string        `json:"title"`
	Price         *float64      `json:"price"` // nil means "custom / contact us"
	Currency      string        `json:"currency"`
	CostFrequency CostFrequency `json:"cost_frequency"`
	Features      []string      `json:"features"`
}

// IsFree reports whether the plan costs nothing (a price of zero or no listed price).
func (p PricingPlan) IsFree() bool {
	return pointer.Val(p.Price) == 0
}

// IsPaid reports whether the plan carries a positive price.
func (p PricingPlan) IsPaid() bool {
	return pointer.Val(p.Price) > 0
}

// FAQ is a question/answer pair shown on a tool page.
type FAQ struct {
	ID       string `json:"_id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// UseCase describes who a tool is for and what they use it for.
type UseCase struct {
	ID          string `json:"_id,omitempty"`
	WhoNeedsIt  string `json:"who_needs_this"`
	UseCaseText string `json:"use_case_text"`
}

// Reference points at another [Tool] by id. It is resolved at read time, never embedded.
type Reference struct {
	ID       string `json:"id"`
	ToolName string `json:"tool_name"`
}

// Tool is one listed AI product.
type Tool struct {
	ID             string   `json:"id"`
	Slug           string   `json:"slug"` // URL-safe, unique within its category
	Name           string   `json:"tool_name"`
	Headline       string   `json:"headline"`
	Description    string   `json:"description,omitempty"`
	ThumbnailImage string   `json:"thumbnail_image"`
	Category       string   `json:"category"`                // Display name of the owning category
	CategorySlug   string   `json:"category_slug,omitempty"` // Derived from the owning Category.ID
	LastUpdated    string   `json:"last_updated,omitempty"`
	AverageRating  *float64 `json:"average_rating"` // 0-5, nil when unrated

	// # Engagement (display-only)
	FavouriteCount  int `json:"favouriteCount"`
	MonthFavourites int `json:"monthFavourites,omitempty"`
	TodayFavourites int `json:"todayFavourites,omitempty"`
	ReviewCount     int `json:"review_count,omitempty"`

	// # Structured Content
	Features     []string      `json:"features,omitempty"`
	PricingPlans []PricingPlan `json:"pricing_plans,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	FAQs         []FAQ         `json:"faqs,omitempty"`
	UseCases     []UseCase     `json:"general_use_cases,omitempty"`
	SimilarTools []Reference   `json:"similar_tools,omitempty"`
}

// HasSlug reports whether the tool can be addressed by a URL.
func (t *Tool) HasSlug() bool {
	return strings.TrimSpace(t.Slug) != ""
}

// IsFree reports whether the tool lists no pricing at all or at least one free plan.
func (t *Tool) IsFree() bool {
	if len(t.PricingPlans) == 0 {
		return true
	}
	for _, plan := range t.PricingPlans {
		if plan.IsFree() {
			return true
		}
	}
	return false
}

// IsPaid reports whether the tool lists at least one plan with a positive price.
func (t *Tool) IsPaid() bool {
	for _, plan := range t.PricingPlans {
		if plan.IsPaid() {
			return true
		}
	}
	return false
}

// # Read Models

// CategoryPage is the payload of a category listing route.
type CategoryPage struct {
	Category *Category `json:"category"`
	Tools    []*Tool   `json:"tools"`
}

// Page is the payload of a tool detail route.
type Page struct {
	Tool     *Tool     `json:"tool"`
	Category *Category `json:"category,omitempty"`
	Similar  []*Tool   `json:"similar_tools"`
}
