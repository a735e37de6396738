// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitemap_test

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opentools/internal/dataset/datasettest"
	"github.com/taibuivan/opentools/internal/route"
	"github.com/taibuivan/opentools/internal/sitemap"
)

const baseURL = "https://opentools.ai"

var generated = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newTable(t *testing.T) *route.Table {
	t.Helper()

	table, err := route.Enumerate(datasettest.Snapshot(t), datasettest.Logger())
	require.NoError(t, err)
	return table
}

/*
TestBuild checks location, priority, frequency and lastmod per family.
*/
func TestBuild(t *testing.T) {
	set := sitemap.Build(newTable(t), baseURL+"/", generated)

	byLoc := make(map[string]sitemap.URL, len(set.URLs))
	for _, u := range set.URLs {
		byLoc[u.Loc] = u
	}

	tests := []struct {
		loc      string
		priority string
		freq     sitemap.ChangeFreq
		lastmod  string
	}{
		{baseURL, "1", sitemap.Daily, "2026-10-01"},
		{baseURL + "/privacy", "0.3", sitemap.Yearly, "2026-10-01"},
		{baseURL + "/ai-assistant", "0.9", sitemap.Daily, "2026-10-01"},
		{baseURL + "/ai-assistant/chatgpt", "0.8", sitemap.Weekly, "2026-09-01"},
		{baseURL + "/tool/brand-new-ai", "0.9", sitemap.Daily, "2026-10-01"},
		{baseURL + "/rankings", "0.95", sitemap.Daily, "2026-10-01"},
		{baseURL + "/rankings/free", "0.9", sitemap.Daily, "2026-10-01"},
		{baseURL + "/news/claude-goes-to-school", "0.8", sitemap.Weekly, "2026-09-15"},
		{baseURL + "/news/llm", "0.8", sitemap.Weekly, "2026-10-01"},
		{baseURL + "/news/machine-learning", "0.6", sitemap.Weekly, "2026-10-01"},
	}

	for _, tt := range tests {
		t.Run(tt.loc, func(t *testing.T) {
			u, ok := byLoc[tt.loc]
			require.True(t, ok)
			assert.Equal(t, tt.priority, u.Priority)
			assert.Equal(t, tt.freq, u.ChangeFreq)
			assert.Equal(t, tt.lastmod, u.LastMod)
		})
	}

	assert.Len(t, set.URLs, 25)
}

/*
TestRender produces a well-formed urlset.
*/
func TestRender(t *testing.T) {
	data, err := sitemap.Render(newTable(t), baseURL, time.Time{})
	require.NoError(t, err)

	assert.Contains(t, string(data), `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, string(data), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, string(data), "<loc>https://opentools.ai/writing/jasper</loc>")

	var decoded sitemap.URLSet
	require.NoError(t, xml.Unmarshal(data, &decoded))
	assert.Len(t, decoded.URLs, 25)
	assert.Empty(t, decoded.URLs[0].LastMod, "zero build time omits lastmod")
}

/*
TestRobots renders the default crawler rules.
*/
func TestRobots(t *testing.T) {
	robots := string(sitemap.Robots(sitemap.DefaultRules(), baseURL+"/"))

	assert.Contains(t, robots, "User-Agent: *\nAllow: /\nDisallow: /api/\nDisallow: /admin/\nDisallow: /_next/\n")
	assert.Contains(t, robots, "User-Agent: GPTBot\nAllow: /\n")
	assert.Contains(t, robots, "User-Agent: ChatGPT-User\nAllow: /\n")
	assert.Contains(t, robots, "Sitemap: https://opentools.ai/sitemap.xml\n")
}
