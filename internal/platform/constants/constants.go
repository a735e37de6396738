// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Metadata: application name and version.
  - Server Timing: Read/Write/Idle timeouts for the preview server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Content Limits: list caps applied when assembling page payloads.
  - Dataset Layout: default file names of the bundled JSON data.

Using this package keeps magic strings and numbers out of the domain code.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "opentools"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds dataset loading at process start.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Content Limits

const (
	// SimilarToolsLimit caps the resolved "similar tools" list on a tool page.
	SimilarToolsLimit = 6

	// RecommendedToolsLimit caps the tools recommended next to a news article.
	RecommendedToolsLimit = 12

	// HomeNewsLimit caps the latest articles shown on the home page.
	HomeNewsLimit = 6

	// MaxSlugLength caps category ids, which become first path segments.
	MaxSlugLength = 64

	// RelatedNewsLimit caps the related articles shown under a news article.
	RelatedNewsLimit = 20

	// DefaultNewsSubtitle is used when an article has no extended detail file.
	DefaultNewsSubtitle = "A Bold Move by Musk to Woo Content Creators"
)

// # Dataset Layout

const (
	// CategoriesFile lists every category ({id, category, description?}).
	CategoriesFile = "categories.json"

	// NewsDir holds the news list and the optional per-article detail files.
	NewsDir = "news"

	// NewsListFile is the news list inside NewsDir.
	NewsListFile = "list.json"

	// LaunchedTodayFile is the optional "launched today" tool list.
	LaunchedTodayFile = "launched-today.json"

	// JSONExt is the extension of every dataset file.
	JSONExt = ".json"
)

// # Export Layout

const (
	// RoutesFile is the route table written at the export root.
	RoutesFile = "routes.json"

	// PageFile is the payload file written inside each route directory.
	PageFile = "index.json"

	// SitemapFile and RobotsFile are written at the export root.
	SitemapFile = "sitemap.xml"
	RobotsFile  = "robots.txt"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)
