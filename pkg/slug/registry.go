// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug

import (
	"fmt"
	"sort"
)

// CollisionError reports two distinct display strings that normalize to the same slug.
type CollisionError struct {
	Namespace string
	First     string
	Second    string
	Slug      string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("slug: %s %q and %q both normalize to %q", e.Namespace, e.First, e.Second, e.Slug)
}

// Registry assigns slugs within one namespace (e.g. "news tag") and refuses collisions.
//
// # Concurrency
//
// Registry is not safe for concurrent use. It is filled once during dataset
// loading and only read afterwards.
type Registry struct {
	namespace string
	bySlug    map[string]string
}

// NewRegistry returns an empty [Registry] for the named namespace.
func NewRegistry(namespace string) *Registry {
	return &Registry{
		namespace: namespace,
		bySlug:    make(map[string]string),
	}
}

// Add normalizes display and records it.
//
// Adding the same display string twice is a no-op. A different display string
// that maps to an already-taken slug yields a [*CollisionError]; a display string
// with no usable characters yields [ErrEmpty].
func (r *Registry) Add(display string) (string, error) {
	value, err := Make(display)
	if err != nil {
		return "", fmt.Errorf("%s %q: %w", r.namespace, display, err)
	}

	if existing, taken := r.bySlug[value]; taken {
		if existing != display {
			return "", &CollisionError{Namespace: r.namespace, First: existing, Second: display, Slug: value}
		}
		return value, nil
	}

	r.bySlug[value] = display
	return value, nil
}

// Lookup returns the display string registered for a slug.
func (r *Registry) Lookup(value string) (string, bool) {
	display, ok := r.bySlug[value]
	return display, ok
}

// Slugs returns every registered slug in ascending order.
func (r *Registry) Slugs() []string {
	result := make([]string, 0, len(r.bySlug))
	for value := range r.bySlug {
		result = append(result, value)
	}
	sort.Strings(result)
	return result
}
