// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitemap

import (
	"strings"

	"github.com/taibuivan/opentools/internal/platform/constants"
)

// Rule is one user-agent group of robots.txt.
type Rule struct {
	UserAgent string
	Allow     []string
	Disallow  []string
}

// DefaultRules opens the site to every crawler except the API and build
// internals, and explicitly welcomes the OpenAI crawlers.
func DefaultRules() []Rule {
	return []Rule{
		{UserAgent: "*", Allow: []string{"/"}, Disallow: []string{"/api/", "/admin/", "/_next/"}},
		{UserAgent: "GPTBot", Allow: []string{"/"}},
		{UserAgent: "ChatGPT-User", Allow: []string{"/"}},
	}
}

// Robots renders robots.txt for rules with a link to the site's sitemap.
func Robots(rules []Rule, baseURL string) []byte {
	var b strings.Builder

	for i, rule := range rules {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("User-Agent: " + rule.UserAgent + "\n")
		for _, path := range rule.Allow {
			b.WriteString("Allow: " + path + "\n")
		}
		for _, path := range rule.Disallow {
			b.WriteString("Disallow: " + path + "\n")
		}
	}

	b.WriteString("\nSitemap: " + strings.TrimRight(baseURL, "/") + "/" + constants.SitemapFile + "\n")
	return []byte(b.String())
}
