// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dataset_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/core/tool"
	"github.com/taibuivan/opentools/internal/dataset"
	"github.com/taibuivan/opentools/internal/dataset/datasettest"
	"github.com/taibuivan/opentools/internal/platform/apperr"
)

/*
TestLoader_Load reads the fixture dataset end to end.
*/
func TestLoader_Load(t *testing.T) {
	snapshot := datasettest.Snapshot(t)

	assert.Equal(t, dataset.Stats{
		Categories: 2,
		Tools:      4,
		Launched:   2,
		Articles:   3,
		Details:    1,
		Tags:       4,
	}, snapshot.Stats())

	category, ok := snapshot.Category("ai-assistant")
	require.True(t, ok)
	assert.Equal(t, 3, category.Count)
	assert.Equal(t, "Chat and task assistants", category.Description)

	claude, ok := snapshot.ToolByID("t-claude")
	require.True(t, ok)
	assert.Equal(t, "AI Assistant", claude.Category, "empty category is inherited from the list")
	assert.Equal(t, "ai-assistant", claude.CategorySlug)

	chatgpt, _ := snapshot.ToolByID("t-chatgpt")
	assert.Equal(t, tool.CostFrequencyMonthly, chatgpt.PricingPlans[1].CostFrequency)

	jasper, _ := snapshot.ToolByID("t-jasper")
	assert.Equal(t, tool.CostFrequencyOther, jasper.PricingPlans[0].CostFrequency)

	_, hasDetail := snapshot.Detail("openai-launches-gpt-5")
	assert.True(t, hasDetail)
	_, orphan := snapshot.Detail("retracted-story")
	assert.False(t, orphan)

	assert.Equal(t, []string{"AI", "Explainers", "LLM", "Machine Learning"}, snapshot.TagNames())

	launched := snapshot.Launched()
	require.Len(t, launched, 2)
	assert.Equal(t, "writing", launched[0].CategorySlug)
}

/*
TestLoader_Load_Warnings checks that recoverable problems are logged, not returned.
*/
func TestLoader_Load_Warnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	_, err := dataset.NewLoader(datasettest.FS(), dataset.DefaultManifest(), logger).Load(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "news_tag_shadowed_by_article")
	assert.Contains(t, buf.String(), "news_detail_orphaned")
	assert.Contains(t, buf.String(), "dataset_loaded")
}

/*
TestLoader_Load_NonCanonicalSlugs keeps URL-safe stored slugs as they are and
drops only the articles whose slug cannot be published.
*/
func TestLoader_Load_NonCanonicalSlugs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	fsys := datasettest.FS()
	set(fsys, "writing.json", `{"data": [
		{"id": "t-gpt45", "slug": "gpt-4.5", "tool_name": "GPT 4.5"},
		{"id": "t-cafe", "slug": "café", "tool_name": "Café Writer"}
	]}`)
	set(fsys, "news/list.json", `[
		{"slug": "GPT-4.5-Review", "tags": ["AI"]},
		{"slug": "naïve-take", "tags": ["Opinion"]}
	]`)

	snapshot, err := dataset.NewLoader(fsys, dataset.DefaultManifest(), logger).Load(context.Background())
	require.NoError(t, err)

	gpt, ok := snapshot.ToolByID("t-gpt45")
	require.True(t, ok)
	assert.Equal(t, "gpt-4.5", gpt.Slug)

	cafe, ok := snapshot.ToolByID("t-cafe")
	require.True(t, ok, "an unroutable tool slug stays local to its record")
	assert.Equal(t, "café", cafe.Slug)

	_, ok = snapshot.ItemBySlug("GPT-4.5-Review")
	assert.True(t, ok)
	_, ok = snapshot.ItemBySlug("naïve-take")
	assert.False(t, ok)
	assert.Equal(t, []string{"AI"}, snapshot.TagNames())

	assert.Contains(t, buf.String(), "news_article_skipped_invalid_slug")
}

/*
TestLoader_Load_ListSlug warns that an article slugged like the news list has no detail file.
*/
func TestLoader_Load_ListSlug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	fsys := datasettest.FS()
	set(fsys, "news/list.json", `[{"slug": "list", "headline": "The list"}]`)

	snapshot, err := dataset.NewLoader(fsys, dataset.DefaultManifest(), logger).Load(context.Background())
	require.NoError(t, err)

	_, ok := snapshot.ItemBySlug("list")
	assert.True(t, ok)
	_, hasDetail := snapshot.Detail("list")
	assert.False(t, hasDetail)
	assert.Contains(t, buf.String(), "news_detail_unreachable")
}

/*
TestLoader_Load_OptionalLaunched verifies that the launched-today file may be absent.
*/
func TestLoader_Load_OptionalLaunched(t *testing.T) {
	fsys := datasettest.FS()
	delete(fsys, "launched-today.json")

	snapshot, err := dataset.NewLoader(fsys, dataset.DefaultManifest(), datasettest.Logger()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Launched())
}

/*
TestLoader_Load_Fatal covers every dataset problem that must abort the build.
*/
func TestLoader_Load_Fatal(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fstest.MapFS)
		code   string
	}{
		{
			name:   "missing_categories",
			mutate: func(fsys fstest.MapFS) { delete(fsys, "categories.json") },
			code:   apperr.CodeDataIntegrity,
		},
		{
			name:   "missing_tool_file",
			mutate: func(fsys fstest.MapFS) { delete(fsys, "writing.json") },
			code:   apperr.CodeDataIntegrity,
		},
		{
			name:   "missing_news_list",
			mutate: func(fsys fstest.MapFS) { delete(fsys, "news/list.json") },
			code:   apperr.CodeDataIntegrity,
		},
		{
			name:   "malformed_detail",
			mutate: func(fsys fstest.MapFS) { set(fsys, "news/openai-launches-gpt-5.json", `{"subtitle": `) },
			code:   apperr.CodeDataIntegrity,
		},
		{
			name: "reserved_category_id",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "categories.json", `[{"id": "news", "category": "News"}]`)
				set(fsys, "news.json", `{"data": []}`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "category_id_not_a_slug",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "categories.json", `[{"id": "AI Assistant", "category": "AI Assistant"}]`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "duplicate_category_id",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "categories.json", `[{"id": "writing", "category": "Writing"}, {"id": "writing", "category": "Copy"}]`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "category_name_collision",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "categories.json", `[{"id": "open-ai", "category": "Open AI"}, {"id": "writing", "category": "open-ai"}]`)
				set(fsys, "open-ai.json", `{"data": []}`)
			},
			code: apperr.CodeSlugCollision,
		},
		{
			name: "news_tag_collision",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "news/list.json", `[
					{"slug": "a", "tags": ["AI", "Machine Learning"]},
					{"slug": "b", "tags": ["ai"]}
				]`)
			},
			code: apperr.CodeSlugCollision,
		},
		{
			name: "tool_category_mismatch",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "writing.json", `{"data": [{"id": "x", "slug": "x", "category": "AI Assistant"}]}`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "duplicate_tool_slug",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "writing.json", `{"data": [{"id": "x", "slug": "x"}, {"id": "y", "slug": "x"}]}`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "tool_slug_with_space",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "writing.json", `{"data": [{"id": "x", "slug": "Jasper AI"}]}`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "tool_slug_with_slash",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "writing.json", `{"data": [{"id": "x", "slug": "jasper/ai"}]}`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "launched_slug_dot_segment",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "launched-today.json", `{"tools": [{"id": "x", "slug": ".."}]}`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "news_slug_with_space",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "news/list.json", `[{"slug": "Breaking News!"}]`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "news_slug_with_slash",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "news/list.json", `[{"slug": "2026/launch"}]`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "category_id_too_long",
			mutate: func(fsys fstest.MapFS) {
				long := strings.Repeat("a", 65)
				set(fsys, "categories.json", `[{"id": "`+long+`", "category": "Long"}]`)
				set(fsys, long+".json", `{"data": []}`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "duplicate_news_slug",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "news/list.json", `[{"slug": "same"}, {"slug": "same"}]`)
			},
			code: apperr.CodeDataIntegrity,
		},
		{
			name: "malformed_launched",
			mutate: func(fsys fstest.MapFS) {
				set(fsys, "launched-today.json", `{"tools": [`)
			},
			code: apperr.CodeDataIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := datasettest.FS()
			tt.mutate(fsys)

			snapshot, err := dataset.NewLoader(fsys, dataset.DefaultManifest(), datasettest.Logger()).Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, snapshot)
			assert.True(t, apperr.HasCode(err, tt.code), "got %v", err)
		})
	}
}

/*
TestLoader_Load_ManifestOverrides reads a category from a renamed file.
*/
func TestLoader_Load_ManifestOverrides(t *testing.T) {
	fsys := datasettest.FS()
	fsys["lists/copywriting.json"] = fsys["writing.json"]
	delete(fsys, "writing.json")

	manifest, err := dataset.ParseManifest([]byte("category_files:\n  writing: lists/copywriting.json\n"))
	require.NoError(t, err)

	snapshot, err := dataset.NewLoader(fsys, manifest, datasettest.Logger()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.ToolsInCategory("writing"), 1)

	manifest, err = dataset.ParseManifest([]byte("category_files:\n  marketing: marketing.json\n"))
	require.NoError(t, err)

	_, err = dataset.NewLoader(datasettest.FS(), manifest, datasettest.Logger()).Load(context.Background())
	assert.True(t, apperr.HasCode(err, apperr.CodeDataIntegrity))
}

/*
TestLoader_Load_Cancelled stops when the context is already done.
*/
func TestLoader_Load_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dataset.NewLoader(datasettest.FS(), dataset.DefaultManifest(), datasettest.Logger()).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

/*
TestAssemble_TagCollision checks the ["AI", "Machine Learning", "ai"] scenario names both sources.
*/
func TestAssemble_TagCollision(t *testing.T) {
	sources := dataset.Sources{
		Categories: []tool.Category{},
		Tools:      map[string][]tool.Tool{},
		News: []news.Item{
			{Slug: "first", Tags: []string{"AI", "Machine Learning"}},
			{Slug: "second", Tags: []string{"ai"}},
		},
	}

	_, err := dataset.Assemble(sources, datasettest.Logger())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeSlugCollision, ae.Code)
	assert.Contains(t, ae.Message, `"AI"`)
	assert.Contains(t, ae.Message, `"ai"`)
}

/*
TestAssemble_DuplicateToolID keeps the first tool for id lookups.
*/
func TestAssemble_DuplicateToolID(t *testing.T) {
	sources := dataset.Sources{
		Categories: []tool.Category{{ID: "writing", Name: "Writing"}, {ID: "video", Name: "Video"}},
		Tools: map[string][]tool.Tool{
			"writing": {{ID: "dup", Slug: "first"}},
			"video":   {{ID: "dup", Slug: "second"}},
		},
	}

	snapshot, err := dataset.Assemble(sources, datasettest.Logger())
	require.NoError(t, err)

	found, ok := snapshot.ToolByID("dup")
	require.True(t, ok)
	assert.Equal(t, "first", found.Slug)
	assert.Len(t, snapshot.AllTools(), 2)
}

/*
TestIsReserved lists a few built-in first segments.
*/
func TestIsReserved(t *testing.T) {
	assert.True(t, dataset.IsReserved("news"))
	assert.True(t, dataset.IsReserved("rankings"))
	assert.False(t, dataset.IsReserved("ai-assistant"))
}

func set(fsys fstest.MapFS, name, data string) {
	fsys[name] = &fstest.MapFile{Data: []byte(data)}
}
