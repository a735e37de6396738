// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool

// # Catalogue Data Access

// Repository defines the read-only data access contract for the tool catalogue.
//
// The only implementation is the immutable dataset snapshot, so lookups never
// block and never fail with I/O errors: a miss is reported through the bool.
// Returned slices and records are shared and must not be modified.
type Repository interface {

	// Categories returns every category in dataset order.
	Categories() []*Category

	// Category returns the category with the given id (its URL slug).
	Category(id string) (*Category, bool)

	// ToolsInCategory returns the tools listed under a category, in dataset order.
	ToolsInCategory(categoryID string) []*Tool

	// AllTools returns every category's tools concatenated in category order.
	AllTools() []*Tool

	// ToolByID returns the first tool carrying the given id across all categories.
	ToolByID(id string) (*Tool, bool)

	// Launched returns the "launched today" tools in dataset order.
	Launched() []*Tool
}
