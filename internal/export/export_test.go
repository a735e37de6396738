// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/core/tool"
	"github.com/taibuivan/opentools/internal/dataset"
	"github.com/taibuivan/opentools/internal/dataset/datasettest"
	"github.com/taibuivan/opentools/internal/export"
	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/internal/route"
)

func setup(t *testing.T) (*route.Table, *route.Resolver) {
	t.Helper()

	snapshot := datasettest.Snapshot(t)
	table, err := route.Enumerate(snapshot, datasettest.Logger())
	require.NoError(t, err)

	return table, route.NewResolver(tool.NewService(snapshot), news.NewService(snapshot, ""), nil)
}

/*
TestExporter_Run writes every page and the index files.
*/
func TestExporter_Run(t *testing.T) {
	table, resolver := setup(t)
	outDir := t.TempDir()

	summary, err := export.NewExporter(resolver, nil, datasettest.Logger()).Run(context.Background(), table, export.Options{
		OutDir:    outDir,
		BaseURL:   "https://opentools.ai",
		Workers:   4,
		Generated: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, table.Len(), summary.Pages)
	assert.Equal(t, table.Len()+3, summary.Files)

	for _, r := range table.Routes() {
		assert.FileExists(t, export.PagePath(outDir, r), r.Path)
	}
	assert.FileExists(t, filepath.Join(outDir, "index.json"))
	assert.FileExists(t, filepath.Join(outDir, "sitemap.xml"))
	assert.FileExists(t, filepath.Join(outDir, "robots.txt"))

	data, err := os.ReadFile(filepath.Join(outDir, "ai-assistant", "chatgpt", "index.json"))
	require.NoError(t, err)

	var page struct {
		Data struct {
			Route route.Route `json:"route"`
			Data  tool.Page   `json:"data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, route.FamilyTool, page.Data.Route.Family)
	assert.Equal(t, "ChatGPT", page.Data.Data.Tool.Name)
	assert.Len(t, page.Data.Data.Similar, 2)

	data, err = os.ReadFile(filepath.Join(outDir, "routes.json"))
	require.NoError(t, err)

	var routes struct {
		Data []route.Route `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &routes))
	assert.Equal(t, table.Routes(), routes.Data)
}

/*
TestExporter_Run_UnresolvableRoute aborts when a route has no page.
*/
func TestExporter_Run_UnresolvableRoute(t *testing.T) {
	table, _ := setup(t)

	empty, err := dataset.Assemble(dataset.Sources{
		Categories: []tool.Category{{ID: "ai-assistant", Name: "AI Assistant"}, {ID: "writing", Name: "Writing"}},
		Tools:      map[string][]tool.Tool{"ai-assistant": {}, "writing": {}},
	}, datasettest.Logger())
	require.NoError(t, err)
	resolver := route.NewResolver(tool.NewService(empty), news.NewService(empty, ""), nil)

	_, err = export.NewExporter(resolver, nil, datasettest.Logger()).Run(context.Background(), table, export.Options{
		OutDir:  t.TempDir(),
		BaseURL: "https://opentools.ai",
		Workers: 2,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestExporter_Run_Cancelled stops before writing pages.
*/
func TestExporter_Run_Cancelled(t *testing.T) {
	table, resolver := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := export.NewExporter(resolver, nil, datasettest.Logger()).Run(ctx, table, export.Options{
		OutDir:  t.TempDir(),
		Workers: 1,
	})
	assert.ErrorIs(t, err, context.Canceled)
}
