// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

// Repository defines the read-only data access contract for the news section.
// Returned slices and records are shared and must not be modified.
type Repository interface {

	// Items returns every article in dataset order.
	Items() []*Item

	// ItemBySlug returns the article with the exact slug.
	ItemBySlug(slug string) (*Item, bool)

	// Detail returns the extended content for an article. A miss means the
	// article has no detail file, which is not an error.
	Detail(slug string) (Detail, bool)

	// TagNames returns every distinct display tag in ascending order.
	TagNames() []string
}
