// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/core/tool"
	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/internal/platform/constants"
)

// maxParallelReads bounds the number of files decoded at the same time.
const maxParallelReads = 16

// toolFile is the envelope of a per-category tool list.
type toolFile struct {
	Data []tool.Tool `json:"data"`
}

// launchedFile is the envelope of the launched-today list.
type launchedFile struct {
	Tools []tool.Tool `json:"tools"`
}

// Loader reads a dataset from a file system in a single pass.
type Loader struct {
	fsys     fs.FS
	manifest Manifest
	logger   *slog.Logger
}

// NewLoader constructs a [Loader] over fsys (typically os.DirFS(cfg.DataDir)).
func NewLoader(fsys fs.FS, manifest Manifest, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{fsys: fsys, manifest: manifest, logger: logger}
}

/*
Load reads every dataset file and assembles the [Snapshot].

Description: The categories file is read first because it names the tool
files. Tool files, the news list, detail files and the optional
launched-today file are then decoded in parallel. The first failure cancels
the remaining reads.

Returns:
  - *Snapshot: The immutable dataset
  - error: DATA_INTEGRITY or SLUG_COLLISION describing the first fatal problem
*/
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	var sources Sources
	if err := l.readJSON(l.manifest.Categories, &sources.Categories); err != nil {
		return nil, err
	}

	declared := make(map[string]struct{}, len(sources.Categories))
	for _, category := range sources.Categories {
		declared[category.ID] = struct{}{}
	}
	for id := range l.manifest.CategoryFiles {
		if _, ok := declared[id]; !ok {
			return nil, apperr.DataIntegrity(fmt.Sprintf("manifest: category_files names unknown category id %q", id), nil)
		}
	}

	var mu sync.Mutex
	sources.Tools = make(map[string][]tool.Tool, len(sources.Categories))
	sources.Details = make(map[string]news.Detail)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelReads)

	for id := range declared {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			var file toolFile
			if err := l.readJSON(l.manifest.CategoryFile(id), &file); err != nil {
				return err
			}

			mu.Lock()
			sources.Tools[id] = file.Data
			mu.Unlock()
			return nil
		})
	}

	group.Go(func() error {
		return l.readJSON(l.manifest.NewsListFile(), &sources.News)
	})

	group.Go(func() error {
		launched, err := l.readLaunched()
		if err != nil {
			return err
		}
		sources.Launched = launched
		return nil
	})

	detailFiles, err := l.detailFiles()
	if err != nil {
		return nil, err
	}
	for articleSlug, file := range detailFiles {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			var detail news.Detail
			if err := l.readJSON(file, &detail); err != nil {
				return err
			}

			mu.Lock()
			sources.Details[articleSlug] = detail
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	// The news list occupies <news_dir>/list.json, so an article slugged
	// "list" can never have a detail file.
	listSlug := strings.TrimSuffix(constants.NewsListFile, constants.JSONExt)
	for _, item := range sources.News {
		if item.Slug == listSlug {
			l.logger.Warn("news_detail_unreachable",
				slog.String("slug", item.Slug),
				slog.String("file", l.manifest.NewsListFile()),
			)
		}
	}

	snapshot, err := Assemble(sources, l.logger)
	if err != nil {
		return nil, err
	}

	stats := snapshot.Stats()
	l.logger.Info("dataset_loaded",
		slog.Int("categories", stats.Categories),
		slog.Int("tools", stats.Tools),
		slog.Int("launched", stats.Launched),
		slog.Int("articles", stats.Articles),
		slog.Int("details", stats.Details),
		slog.Int("tags", stats.Tags),
		slog.Duration("elapsed", time.Since(start)),
	)

	return snapshot, nil
}

// readLaunched decodes the optional launched-today file. A missing file yields no tools.
func (l *Loader) readLaunched() ([]tool.Tool, error) {
	if l.manifest.LaunchedToday == "" {
		return nil, nil
	}

	var file launchedFile
	err := l.readJSON(l.manifest.LaunchedToday, &file)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("launched_today_missing", slog.String("file", l.manifest.LaunchedToday))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return file.Tools, nil
}

// detailFiles maps article slugs to their detail file in the news directory.
func (l *Loader) detailFiles() (map[string]string, error) {
	entries, err := fs.ReadDir(l.fsys, l.manifest.NewsDir)
	if err != nil {
		return nil, apperr.DataIntegrity(fmt.Sprintf("%s: cannot list news directory", l.manifest.NewsDir), err)
	}

	files := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == constants.NewsListFile || path.Ext(name) != constants.JSONExt {
			continue
		}
		files[strings.TrimSuffix(name, constants.JSONExt)] = path.Join(l.manifest.NewsDir, name)
	}

	return files, nil
}

// readJSON decodes one file. Errors name the file and keep fs.ErrNotExist reachable.
func (l *Loader) readJSON(file string, target any) error {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return apperr.DataIntegrity(fmt.Sprintf("%s: cannot read file", file), err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return apperr.DataIntegrity(fmt.Sprintf("%s: malformed JSON", file), err)
	}

	return nil
}
