// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package datasettest provides a small, complete dataset for tests.
package datasettest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opentools/internal/dataset"
)

const categoriesJSON = `[
  {"id": "ai-assistant", "category": "AI Assistant", "description": "Chat and task assistants"},
  {"id": "writing", "category": "Writing"}
]`

const assistantJSON = `{"data": [
  {
    "id": "t-chatgpt", "slug": "chatgpt", "tool_name": "ChatGPT", "headline": "Conversational AI",
    "category": "AI Assistant", "last_updated": "2026-09-01T10:00:00Z",
    "favouriteCount": 900, "monthFavourites": 40, "todayFavourites": 3,
    "pricing_plans": [
      {"title": "Free", "price": 0, "currency": "USD", "cost_frequency": "monthly"},
      {"title": "Plus", "price": 20, "currency": "USD", "cost_frequency": "Month"}
    ],
    "similar_tools": [
      {"id": "t-claude", "tool_name": "Claude"},
      {"id": "t-removed", "tool_name": "Gone"},
      {"id": "t-chatgpt", "tool_name": "ChatGPT"},
      {"id": "t-jasper", "tool_name": "Jasper"},
      {"id": "t-claude", "tool_name": "Claude"}
    ]
  },
  {
    "id": "t-claude", "slug": "claude", "tool_name": "Claude", "headline": "Helpful assistant",
    "favouriteCount": 700, "monthFavourites": 55, "todayFavourites": 9
  },
  {
    "id": "t-draft", "slug": "", "tool_name": "Unnamed Draft", "headline": "No slug yet",
    "favouriteCount": 5
  }
]}`

const writingJSON = `{"data": [
  {
    "id": "t-jasper", "slug": "jasper", "tool_name": "Jasper", "headline": "Marketing copy",
    "category": "Writing", "favouriteCount": 300, "monthFavourites": 12, "todayFavourites": 1,
    "pricing_plans": [{"title": "Creator", "price": 39, "currency": "USD", "cost_frequency": "quarterly"}]
  }
]}`

const newsJSON = `[
  {
    "_id": "n1", "slug": "openai-launches-gpt-5", "headline": "OpenAI launches GPT-5",
    "summary": "The next model.", "last_updated": "2026-08-07T09:00:00Z",
    "tags": ["AI", "Machine Learning"]
  },
  {
    "_id": "n2", "slug": "claude-goes-to-school", "headline": "Claude goes to school",
    "summary": "Education push.", "last_updated": "2026-09-15",
    "tags": ["AI", "LLM", "  "]
  },
  {
    "_id": "n3", "slug": "llm", "headline": "What is an LLM?",
    "summary": "Explainer.", "last_updated": "sometime soon",
    "tags": ["Explainers"]
  }
]`

const detailJSON = `{
  "subtitle": "A new frontier",
  "table_of_contents": ["What's New?", "Pricing & Access"],
  "sections": [
    {"heading": "What's New?", "paragraphs": ["Faster.", "Cheaper."]},
    {"heading": "Pricing & Access", "paragraphs": ["Everyone."]}
  ]
}`

const launchedJSON = `{"tools": [
  {"id": "l-1", "slug": "brand-new-ai", "tool_name": "Brand New AI", "category": "Writing"},
  {"id": "l-2", "slug": "", "tool_name": "Stealth Launch"}
]}`

// FS returns the fixture dataset laid out with the default manifest.
//
// Contents: two categories, four catalogue tools (one without slug), three
// articles (one whose slug shadows the "LLM" tag), one detail file, one
// orphaned detail file and two launched tools (one without slug).
func FS() fstest.MapFS {
	return fstest.MapFS{
		"categories.json":                 {Data: []byte(categoriesJSON)},
		"ai-assistant.json":               {Data: []byte(assistantJSON)},
		"writing.json":                    {Data: []byte(writingJSON)},
		"news/list.json":                  {Data: []byte(newsJSON)},
		"news/openai-launches-gpt-5.json": {Data: []byte(detailJSON)},
		"news/retracted-story.json":       {Data: []byte(`{"subtitle": "Gone"}`)},
		"launched-today.json":             {Data: []byte(launchedJSON)},
	}
}

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Snapshot loads the fixture dataset and fails the test on error.
func Snapshot(t testing.TB) *dataset.Snapshot {
	t.Helper()

	snapshot, err := dataset.NewLoader(FS(), dataset.DefaultManifest(), Logger()).Load(context.Background())
	require.NoError(t, err)

	return snapshot
}
