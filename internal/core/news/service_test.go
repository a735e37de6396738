// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/dataset/datasettest"
	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/internal/platform/constants"
)

func newService(t *testing.T) *news.Service {
	return news.NewService(datasettest.Snapshot(t), "")
}

func slugs(items []*news.Item) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Slug)
	}
	return result
}

/*
TestService_List sorts newest first with undated articles last.
*/
func TestService_List(t *testing.T) {
	service := newService(t)

	assert.Equal(t,
		[]string{"claude-goes-to-school", "openai-launches-gpt-5", "llm"},
		slugs(service.List()),
	)
}

/*
TestService_Resolve tests the article-before-tag lookup order.
*/
func TestService_Resolve(t *testing.T) {
	service := newService(t)

	tests := []struct {
		name  string
		value string
		kind  news.Kind
		count int
	}{
		{"article", "openai-launches-gpt-5", news.KindArticle, 0},
		{"article_shadows_tag", "llm", news.KindArticle, 0},
		{"tag_single_word", "ai", news.KindTag, 2},
		{"tag_multi_word", "machine-learning", news.KindTag, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution, err := service.Resolve(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, resolution.Kind)

			if tt.kind == news.KindTag {
				require.NotNil(t, resolution.Tag)
				assert.Nil(t, resolution.Article)
				assert.Len(t, resolution.Tag.Items, tt.count)
				assert.Equal(t, tt.value, resolution.Tag.Tag.Slug)
			} else {
				require.NotNil(t, resolution.Article)
				assert.Nil(t, resolution.Tag)
			}
		})
	}

	_, err := service.Resolve("quantum-computing")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_ResolveArticle_WithDetail checks anchors and related articles.
*/
func TestService_ResolveArticle_WithDetail(t *testing.T) {
	service := newService(t)

	article, err := service.ResolveArticle("openai-launches-gpt-5")
	require.NoError(t, err)

	assert.True(t, article.HasDetail)
	assert.Equal(t, "A new frontier", article.Subtitle)
	require.Len(t, article.TableOfContents, 2)
	assert.Equal(t, "what-s-new", article.TableOfContents[0].Anchor)
	assert.Equal(t, "pricing-access", article.TableOfContents[1].Anchor)
	require.Len(t, article.Sections, 2)
	assert.Equal(t, article.TableOfContents[0].Anchor, article.Sections[0].Anchor)

	assert.Equal(t, []string{"claude-goes-to-school", "llm"}, slugs(article.Related))
}

/*
TestService_ResolveArticle_Defaults covers articles without a detail file.
*/
func TestService_ResolveArticle_Defaults(t *testing.T) {
	t.Run("package_default", func(t *testing.T) {
		article, err := newService(t).ResolveArticle("claude-goes-to-school")
		require.NoError(t, err)

		assert.False(t, article.HasDetail)
		assert.Equal(t, constants.DefaultNewsSubtitle, article.Subtitle)
		assert.Empty(t, article.TableOfContents)
		assert.Empty(t, article.Sections)
	})

	t.Run("configured_default", func(t *testing.T) {
		service := news.NewService(datasettest.Snapshot(t), "Fresh from the newsroom")

		article, err := service.ResolveArticle("llm")
		require.NoError(t, err)
		assert.Equal(t, "Fresh from the newsroom", article.Subtitle)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := newService(t).ResolveArticle("ai")
		assert.True(t, apperr.IsNotFound(err))
	})
}

/*
TestService_Tags lists derived tags with counts.
*/
func TestService_Tags(t *testing.T) {
	tags := newService(t).Tags()

	assert.Equal(t, []news.Tag{
		{Name: "AI", Slug: "ai", Count: 2},
		{Name: "Explainers", Slug: "explainers", Count: 1},
		{Name: "LLM", Slug: "llm", Count: 1},
		{Name: "Machine Learning", Slug: "machine-learning", Count: 1},
	}, tags)
}

/*
TestParseDate tests the accepted date layouts.
*/
func TestParseDate(t *testing.T) {
	assert.False(t, news.ParseDate("2026-09-15T08:30:00Z").IsZero())
	assert.False(t, news.ParseDate("2026-09-15T08:30:00").IsZero())
	assert.False(t, news.ParseDate("2026-09-15").IsZero())
	assert.True(t, news.ParseDate("next week").IsZero())
	assert.True(t, news.ParseDate("").IsZero())
}
