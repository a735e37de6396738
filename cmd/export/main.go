// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command export writes the static build of the OpenTools site.
//
// # Build Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load the dataset, enumerate and verify every route.
//  4. Write one payload per route plus routes.json, sitemap.xml and robots.txt.
//
// Any failure exits non-zero so a CI pipeline never publishes a partial build.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/taibuivan/opentools/internal/export"
	"github.com/taibuivan/opentools/internal/platform/config"
	"github.com/taibuivan/opentools/internal/platform/constants"
	"github.com/taibuivan/opentools/internal/platform/metrics"
	"github.com/taibuivan/opentools/internal/site"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
	}

	log.Info("export_starting",
		slog.String("version", constants.AppVersion),
		slog.String("data_dir", cfg.DataDir),
		slog.String("out_dir", cfg.OutDir),
		slog.Int("workers", cfg.ExportWorkers),
	)

	// SIGINT/SIGTERM cancel the build; workers stop at the next route.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	m := metrics.New(runtime.Version())

	// ── 3. Dataset & Routes ───────────────────────────────────────────────
	startupCtx, startupCancel := context.WithTimeout(ctx, constants.StartupTimeout)
	built, err := site.Build(startupCtx, cfg, log, m)
	startupCancel()
	must(log, err, "build site")

	// ── 4. Export ─────────────────────────────────────────────────────────
	summary, err := export.NewExporter(built.Resolver, m, log).Run(ctx, built.Table, export.Options{
		OutDir:    cfg.OutDir,
		BaseURL:   cfg.SiteBaseURL,
		Workers:   cfg.ExportWorkers,
		Generated: time.Now().UTC(),
	})
	must(log, err, "export site")

	log.Info("export_complete",
		slog.Int("pages", summary.Pages),
		slog.Int("files", summary.Files),
		slog.Duration("elapsed", summary.Elapsed),
	)
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName), slog.String("command", "export"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("export_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
