// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package site assembles everything both binaries need from a dataset: the
snapshot, the domain services, the verified route table and the resolver.

Startup Sequence:

 1. Read the optional manifest.
 2. Load and validate the dataset (all-or-nothing).
 3. Build the tool and news services over the snapshot.
 4. Enumerate the route table.
 5. Verify that every route resolves.

Any failure aborts the sequence; there is no partially built [Site].
*/
package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/core/tool"
	"github.com/taibuivan/opentools/internal/dataset"
	"github.com/taibuivan/opentools/internal/platform/config"
	"github.com/taibuivan/opentools/internal/platform/metrics"
	"github.com/taibuivan/opentools/internal/route"
)

// Site is the fully assembled, read-only site model.
type Site struct {
	Snapshot *dataset.Snapshot
	Tools    *tool.Service
	News     *news.Service
	Table    *route.Table
	Resolver *route.Resolver
}

// Build assembles the site from cfg.DataDir.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*Site, error) {
	manifest, err := dataset.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}

	return BuildFS(ctx, os.DirFS(cfg.DataDir), manifest, cfg.NewsDefaultSubtitle, logger, m)
}

// BuildFS assembles the site from any file system. m may be nil.
func BuildFS(ctx context.Context, fsys fs.FS, manifest dataset.Manifest, newsSubtitle string, logger *slog.Logger, m *metrics.Metrics) (*Site, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	snapshot, err := dataset.NewLoader(fsys, manifest, logger).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("site: load dataset: %w", err)
	}
	m.ObserveDatasetLoad(time.Since(start))
	recordStats(m, snapshot.Stats())

	tools := tool.NewService(snapshot)
	newsService := news.NewService(snapshot, newsSubtitle)
	resolver := route.NewResolver(tools, newsService, m)

	table, err := route.Enumerate(snapshot, logger)
	if err != nil {
		return nil, fmt.Errorf("site: enumerate routes: %w", err)
	}
	for family, count := range table.Counts() {
		m.SetRoutes(string(family), count)
	}

	if err := route.Verify(table, resolver); err != nil {
		return nil, fmt.Errorf("site: verify routes: %w", err)
	}

	logger.Info("routes_verified",
		slog.Int("routes", table.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return &Site{
		Snapshot: snapshot,
		Tools:    tools,
		News:     newsService,
		Table:    table,
		Resolver: resolver,
	}, nil
}

func recordStats(m *metrics.Metrics, stats dataset.Stats) {
	m.SetDatasetRecords("categories", stats.Categories)
	m.SetDatasetRecords("tools", stats.Tools)
	m.SetDatasetRecords("launched", stats.Launched)
	m.SetDatasetRecords("articles", stats.Articles)
	m.SetDatasetRecords("details", stats.Details)
	m.SetDatasetRecords("tags", stats.Tags)
}
