// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. Both the static build
(cmd/export) and the preview server (cmd/api) read the same [Config].

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the loader, exporter and server via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/opentools/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the OpenTools build and preview server.
type Config struct {

	// Server settings (preview server only)
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Dataset location. ManifestPath is optional; when empty the default layout
	// under DataDir is used (see dataset.DefaultManifest).
	DataDir      string `env:"DATA_DIR"      envDefault:"./data"`
	ManifestPath string `env:"MANIFEST_PATH"`

	// Static export
	OutDir        string `env:"OUT_DIR"        envDefault:"./out"`
	SiteBaseURL   string `env:"SITE_BASE_URL"  envDefault:"https://opentools.ai"`
	ExportWorkers int    `env:"EXPORT_WORKERS" envDefault:"8"`

	// NewsDefaultSubtitle is shown on articles without an extended detail file.
	NewsDefaultSubtitle string `env:"NEWS_DEFAULT_SUBTITLE"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.ExportWorkers < 1 {
		return nil, fmt.Errorf("config: EXPORT_WORKERS must be positive, got %d", cfg.ExportWorkers)
	}

	cfg.SiteBaseURL = strings.TrimRight(cfg.SiteBaseURL, "/")
	if cfg.NewsDefaultSubtitle == "" {
		cfg.NewsDefaultSubtitle = constants.DefaultNewsSubtitle
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetExtraOrigins returns the comma-separated EXTRA_ORIGINS as a slice.
func (c *Config) GetExtraOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if clean := strings.TrimSpace(origin); clean != "" {
			origins = append(origins, clean)
		}
	}
	return origins
}
