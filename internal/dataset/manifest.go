// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/opentools/internal/platform/constants"
)

// Manifest names the files that make up a dataset, relative to the data root.
//
// # Layout
//
// Without a manifest the conventional layout is used:
//
//	categories.json
//	<category-id>.json        one per category, {"data": [...]}
//	news/list.json
//	news/<article-slug>.json  optional extended content
//	launched-today.json       optional, {"tools": [...]}
//
// CategoryFiles overrides the file of individual categories. Every key must be
// a category id declared in the categories file.
type Manifest struct {
	Categories    string            `yaml:"categories"`
	NewsDir       string            `yaml:"news_dir"`
	LaunchedToday string            `yaml:"launched_today"`
	CategoryFiles map[string]string `yaml:"category_files"`
}

// DefaultManifest returns the conventional dataset layout.
func DefaultManifest() Manifest {
	return Manifest{
		Categories:    constants.CategoriesFile,
		NewsDir:       constants.NewsDir,
		LaunchedToday: constants.LaunchedTodayFile,
	}
}

// ParseManifest decodes a YAML manifest. Omitted entries keep their default.
func ParseManifest(data []byte) (Manifest, error) {
	manifest := DefaultManifest()
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("dataset: invalid manifest: %w", err)
	}

	if err := manifest.validate(); err != nil {
		return Manifest{}, err
	}

	return manifest, nil
}

// LoadManifest reads the manifest at filePath, or returns [DefaultManifest] when filePath is empty.
func LoadManifest(filePath string) (Manifest, error) {
	if filePath == "" {
		return DefaultManifest(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return Manifest{}, fmt.Errorf("dataset: read manifest: %w", err)
	}

	return ParseManifest(data)
}

// CategoryFile returns the tool list file of a category.
func (m Manifest) CategoryFile(categoryID string) string {
	if file, ok := m.CategoryFiles[categoryID]; ok {
		return file
	}
	return categoryID + constants.JSONExt
}

// NewsListFile returns the path of the news list.
func (m Manifest) NewsListFile() string {
	return path.Join(m.NewsDir, constants.NewsListFile)
}

// validate rejects paths that cannot be opened through an [fs.FS].
func (m Manifest) validate() error {
	paths := map[string]string{
		"categories": m.Categories,
		"news_dir":   m.NewsDir,
	}
	if m.LaunchedToday != "" {
		paths["launched_today"] = m.LaunchedToday
	}
	for id, file := range m.CategoryFiles {
		paths["category_files."+id] = file
	}

	for key, value := range paths {
		if !fs.ValidPath(value) || (value == "." && key != "news_dir") {
			return fmt.Errorf("dataset: manifest %s: %q is not a relative slash-separated path", key, value)
		}
	}

	return nil
}
