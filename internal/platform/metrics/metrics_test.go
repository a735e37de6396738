// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/opentools/internal/platform/metrics"
)

/*
TestMetrics_Record checks that each helper updates its collector.
*/
func TestMetrics_Record(t *testing.T) {
	m := metrics.New(runtime.Version())

	m.SetDatasetRecords("tools", 42)
	m.SetRoutes("tool", 40)
	m.ObserveResolution("tool", "ok")
	m.ObserveResolution("tool", "ok")
	m.ObserveRequest(http.MethodGet, "/api/v1/routes", http.StatusOK, 5*time.Millisecond)
	m.AddExportedFile("page")

	body := scrape(t, m)
	assert.Contains(t, body, `opentools_dataset_records{kind="tools"} 42`)
	assert.Contains(t, body, `opentools_routes{family="tool"} 40`)
	assert.Contains(t, body, `opentools_resolutions_total{family="tool",result="ok"} 2`)
	assert.Contains(t, body, `opentools_http_requests_total{method="GET",route="/api/v1/routes",status="200"} 1`)
	assert.Contains(t, body, `opentools_export_files_total{kind="page"} 1`)
}

/*
TestMetrics_Nil verifies that a nil *Metrics is a no-op.
*/
func TestMetrics_Nil(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.SetDatasetRecords("tools", 1)
		m.ObserveDatasetLoad(time.Second)
		m.SetRoutes("tool", 1)
		m.ObserveResolution("tool", "ok")
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.AddExportedFile("page")
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

/*
TestMetrics_Handler exposes the isolated registry.
*/
func TestMetrics_Handler(t *testing.T) {
	m := metrics.New("go1.24")
	m.SetRoutes("news-article", 3)

	body := scrape(t, m)
	assert.Contains(t, body, `opentools_routes{family="news-article"} 3`)
	assert.Contains(t, body, "opentools_info")
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}
