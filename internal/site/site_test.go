// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opentools/internal/dataset"
	"github.com/taibuivan/opentools/internal/dataset/datasettest"
	"github.com/taibuivan/opentools/internal/platform/apperr"
	"github.com/taibuivan/opentools/internal/platform/config"
	"github.com/taibuivan/opentools/internal/platform/metrics"
	"github.com/taibuivan/opentools/internal/site"
)

/*
TestBuildFS assembles the fixture site.
*/
func TestBuildFS(t *testing.T) {
	built, err := site.BuildFS(context.Background(), datasettest.FS(), dataset.DefaultManifest(), "", datasettest.Logger(), metrics.New("test"))
	require.NoError(t, err)

	assert.Equal(t, 25, built.Table.Len())
	assert.Equal(t, 4, built.Snapshot.Stats().Tools)
}

/*
TestBuildFS_Fatal surfaces dataset errors unchanged.
*/
func TestBuildFS_Fatal(t *testing.T) {
	fsys := datasettest.FS()
	delete(fsys, "categories.json")

	_, err := site.BuildFS(context.Background(), fsys, dataset.DefaultManifest(), "", datasettest.Logger(), nil)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeDataIntegrity))
}

/*
TestBuild reads the dataset from DATA_DIR on disk.
*/
func TestBuild(t *testing.T) {
	dataDir := t.TempDir()
	for name, file := range datasettest.FS() {
		path := filepath.Join(dataDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, file.Data, 0o644))
	}

	built, err := site.Build(context.Background(), &config.Config{DataDir: dataDir}, datasettest.Logger(), nil)
	require.NoError(t, err)
	assert.Equal(t, 25, built.Table.Len())
}
