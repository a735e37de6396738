// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from display strings.
//
// # Usage
//
// Slugs are the path segments of every generated page (e.g. "machine-learning"
// for the news tag "Machine Learning"). The same [Normalize] function is used to
// build canonical slugs and to match user-supplied path segments back to
// display strings, so its output must never change for a given input.
package slug

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// space lists every rune treated as whitespace. RE2's \s is ASCII-only, so the
// Unicode separators and the vertical tab are added explicitly.
const space = `\s\x0B\p{Z}\x{FEFF}`

var (
	// disallowed matches any rune that is not a-z, 0-9, whitespace, or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9` + space + `-]`)
	// whitespaceRun matches one or more whitespace runes.
	whitespaceRun = regexp.MustCompile(`[` + space + `]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
	// nonAlphanumeric matches any run of characters outside a-z and 0-9.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// unreserved matches RFC 3986 unreserved characters only.
	unreserved = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)
	// pathBreaking matches a separator or whitespace anywhere in the value.
	pathBreaking = regexp.MustCompile(`[/\\` + space + `]`)
)

// ErrEmpty is returned by [Make] when a display string has no slug-able characters.
var ErrEmpty = errors.New("slug: input normalizes to an empty slug")

// Normalize converts a display string into a URL-safe slug.
//
// # Transformation Pipeline
//
// 1. Converts to lowercase (full Unicode case mapping).
// 2. Trims leading and trailing whitespace.
// 3. Removes every character that is not a-z, 0-9, whitespace, or hyphen.
// 4. Replaces whitespace runs with a single hyphen.
// 5. Collapses hyphen runs.
// 6. Strips leading/trailing hyphens.
//
// No Unicode composition is applied: a decomposed "e\u0301" keeps its base
// letter while a precomposed "é" is dropped.
//
// The result may be empty. Callers that need a usable identifier use [Make].
func Normalize(input string) string {

	// 1. Lowercase
	result := cases.Lower(language.Und).String(input)

	// 2. Trim
	result = strings.TrimSpace(result)

	// 3. Drop everything outside the slug alphabet
	result = disallowed.ReplaceAllString(result, "")

	// 4. Clean up hyphenation
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// Make normalizes input and rejects an empty result with [ErrEmpty].
func Make(input string) (string, error) {
	result := Normalize(input)
	if result == "" {
		return "", ErrEmpty
	}
	return result, nil
}

// ToDisplay recovers the display string for a slug from a list of candidates.
//
// It normalizes every candidate and returns the first one whose slug equals the
// (lowercased, trimmed) input. Normalization is lossy, so this lookup is the only
// way to map a URL segment back to its source string.
func ToDisplay(value string, candidates []string) (string, bool) {
	wanted := strings.ToLower(strings.TrimSpace(value))
	if wanted == "" {
		return "", false
	}

	for _, candidate := range candidates {
		if Normalize(candidate) == wanted {
			return candidate, true
		}
	}

	return "", false
}

// Anchor converts a section heading into an in-page fragment identifier.
//
// Every run of characters outside a-z and 0-9 becomes a single hyphen, and
// leading/trailing hyphens are dropped ("1. Why it matters?" -> "1-why-it-matters").
func Anchor(heading string) string {
	result := cases.Lower(language.Und).String(heading)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// IsSegment reports whether value can be used verbatim as one URL path segment.
//
// It accepts stored slugs that are not canonical ("gpt-4.5", "Claude-3") as
// long as every character is RFC 3986 unreserved and the value is not a dot
// segment.
func IsSegment(value string) bool {
	return !isDotSegment(value) && unreserved.MatchString(value)
}

// BreaksPath reports whether value would split or escape the path it is placed
// in: it contains a slash, a backslash or whitespace, or is "." or "..".
func BreaksPath(value string) bool {
	return isDotSegment(value) || pathBreaking.MatchString(value)
}

func isDotSegment(value string) bool {
	return value == "." || value == ".."
}
