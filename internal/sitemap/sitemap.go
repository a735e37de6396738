// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sitemap renders sitemap.xml and robots.txt from the route table.

The sitemap follows the sitemaps.org 0.9 urlset schema. Priority and change
frequency are fixed per route family; static pages carry their own.
*/
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/opentools/internal/core/news"
	"github.com/taibuivan/opentools/internal/route"
)

// Namespace is the sitemaps.org schema namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq is a sitemap <changefreq> value.
type ChangeFreq string

const (
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

// URL is one <url> entry.
type URL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq"`
	Priority   string     `xml:"priority"`
}

// URLSet is the sitemap document root.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// hint is the priority and change frequency of a route.
type hint struct {
	priority float64
	freq     ChangeFreq
}

var staticHints = map[string]hint{
	route.PageHome:    {1.0, Daily},
	route.PageNews:    {0.9, Daily},
	route.PageAbout:   {0.8, Monthly},
	route.PageContact: {0.7, Monthly},
	route.PageFAQ:     {0.7, Monthly},
	route.PageHelp:    {0.7, Monthly},
	route.PagePrivacy: {0.3, Yearly},
	route.PageTerms:   {0.3, Yearly},
}

var familyHints = map[route.Family]hint{
	route.FamilyCategory:    {0.9, Daily},
	route.FamilyTool:        {0.8, Weekly},
	route.FamilyLaunched:    {0.9, Daily},
	route.FamilyRanking:     {0.9, Daily},
	route.FamilyNewsArticle: {0.8, Weekly},
	route.FamilyNewsTag:     {0.6, Weekly},
}

// hintFor returns the priority and change frequency of a route.
func hintFor(r route.Route) hint {
	if r.Family == route.FamilyStatic {
		if h, ok := staticHints[r.Slug]; ok {
			return h
		}
		return hint{0.5, Monthly}
	}
	if r.Family == route.FamilyRanking && r.Path == "/rankings" {
		return hint{0.95, Daily}
	}
	return familyHints[r.Family]
}

/*
Build converts the route table into a [URLSet].

Parameters:
  - table: *route.Table
  - baseURL: string (absolute site origin without trailing slash)
  - generated: time.Time (lastmod for routes without a record date; zero omits it)
*/
func Build(table *route.Table, baseURL string, generated time.Time) URLSet {
	baseURL = strings.TrimRight(baseURL, "/")

	set := URLSet{XMLNS: Namespace, URLs: make([]URL, 0, table.Len())}
	for _, r := range table.Routes() {
		h := hintFor(r)

		loc := baseURL + r.Path
		if r.Path == "/" {
			loc = baseURL
		}

		set.URLs = append(set.URLs, URL{
			Loc:        loc,
			LastMod:    lastModified(r, generated),
			ChangeFreq: h.freq,
			Priority:   fmt.Sprintf("%.2g", h.priority),
		})
	}

	return set
}

// Render returns the encoded sitemap.xml document.
func Render(table *route.Table, baseURL string, generated time.Time) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(Build(table, baseURL, generated)); err != nil {
		return nil, fmt.Errorf("sitemap: encode: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// lastModified formats the route's record date, falling back to generated.
func lastModified(r route.Route, generated time.Time) string {
	if parsed := news.ParseDate(r.LastModified); !parsed.IsZero() {
		return parsed.UTC().Format(time.DateOnly)
	}
	if generated.IsZero() {
		return ""
	}
	return generated.UTC().Format(time.DateOnly)
}
