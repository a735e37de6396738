// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package export writes the static build: one JSON payload per route plus the
route table, sitemap.xml and robots.txt.

Layout (trailing-slash style, every page is a directory):

	<out>/routes.json
	<out>/index.json                      home page
	<out>/<category>/index.json
	<out>/<category>/<slug>/index.json
	<out>/news/<slug>/index.json
	<out>/sitemap.xml
	<out>/robots.txt

Pages are resolved and written by a bounded pool of workers sharing the
immutable snapshot. The first failure cancels the rest of the export.
*/
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/opentools/internal/platform/constants"
	"github.com/taibuivan/opentools/internal/platform/metrics"
	"github.com/taibuivan/opentools/internal/platform/respond"
	"github.com/taibuivan/opentools/internal/route"
	"github.com/taibuivan/opentools/internal/sitemap"
)

// Options configures one export run.
type Options struct {
	OutDir    string
	BaseURL   string
	Workers   int
	Generated time.Time // sitemap lastmod fallback
}

// Summary reports what an export wrote.
type Summary struct {
	Pages   int
	Files   int
	Elapsed time.Duration
}

// Exporter writes a route table to disk.
type Exporter struct {
	resolver *route.Resolver
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewExporter constructs an [Exporter]. m may be nil.
func NewExporter(resolver *route.Resolver, m *metrics.Metrics, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{resolver: resolver, metrics: m, logger: logger}
}

/*
Run resolves every route of the table and writes the build into opts.OutDir.

Description: The output directory is created if needed; existing files at
the same paths are overwritten. A route that does not resolve aborts the
export because the route table promised a page at that path.

Returns:
  - Summary: Page and file counts
  - error: The first resolution or I/O failure
*/
func (exporter *Exporter) Run(ctx context.Context, table *route.Table, opts Options) (Summary, error) {
	start := time.Now()

	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("export: create %s: %w", opts.OutDir, err)
	}

	var files atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Workers)

	for _, r := range table.Routes() {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			page, err := exporter.resolver.Resolve(r)
			if err != nil {
				return fmt.Errorf("export: resolve %s: %w", r.Path, err)
			}

			if err := writeJSON(PagePath(opts.OutDir, r), respond.SuccessEnvelope{Data: page}); err != nil {
				return err
			}

			files.Add(1)
			exporter.metrics.AddExportedFile("page")
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Summary{}, err
	}

	if err := exporter.writeIndexFiles(table, opts); err != nil {
		return Summary{}, err
	}
	files.Add(3)

	summary := Summary{
		Pages:   table.Len(),
		Files:   int(files.Load()),
		Elapsed: time.Since(start),
	}

	exporter.logger.Info("export_finished",
		slog.String("out_dir", opts.OutDir),
		slog.Int("pages", summary.Pages),
		slog.Int("files", summary.Files),
		slog.Int("workers", opts.Workers),
		slog.Duration("elapsed", summary.Elapsed),
	)

	return summary, nil
}

// writeIndexFiles writes routes.json, sitemap.xml and robots.txt.
func (exporter *Exporter) writeIndexFiles(table *route.Table, opts Options) error {
	if err := writeJSON(filepath.Join(opts.OutDir, constants.RoutesFile), respond.SuccessEnvelope{Data: table.Routes()}); err != nil {
		return err
	}
	exporter.metrics.AddExportedFile("routes")

	sitemapXML, err := sitemap.Render(table, opts.BaseURL, opts.Generated)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(opts.OutDir, constants.SitemapFile), sitemapXML); err != nil {
		return err
	}
	exporter.metrics.AddExportedFile("sitemap")

	robots := sitemap.Robots(sitemap.DefaultRules(), opts.BaseURL)
	if err := writeFile(filepath.Join(opts.OutDir, constants.RobotsFile), robots); err != nil {
		return err
	}
	exporter.metrics.AddExportedFile("robots")

	return nil
}

// PagePath returns the payload file of a route inside outDir.
func PagePath(outDir string, r route.Route) string {
	return filepath.Join(outDir, filepath.FromSlash(r.Path), constants.PageFile)
}

func writeJSON(path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
