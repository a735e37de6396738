// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics exposes build and preview-server counters in Prometheus format.
//
// All collectors live on an isolated [prometheus.Registry], so every test can
// create its own [Metrics] without touching the global default registry.
// Every method is safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/opentools/internal/platform/constants"
)

// Metrics holds every opentools collector.
type Metrics struct {
	Registry *prometheus.Registry

	// Dataset
	DatasetRecords     *prometheus.GaugeVec
	DatasetLoadSeconds prometheus.Gauge

	// Routes
	Routes           *prometheus.GaugeVec
	ResolutionsTotal *prometheus.CounterVec

	// Preview server
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	// Static export
	ExportFilesTotal *prometheus.CounterVec

	// Build info
	BuildInfo *prometheus.GaugeVec
}

// New creates a [Metrics] with all collectors registered on a fresh registry.
func New(goVersion string) *Metrics {
	reg := prometheus.NewRegistry()

	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		DatasetRecords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opentools_dataset_records",
				Help: "Number of records in the loaded dataset snapshot.",
			},
			[]string{"kind"},
		),
		DatasetLoadSeconds: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "opentools_dataset_load_seconds",
				Help: "Time spent loading and validating the dataset.",
			},
		),

		Routes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opentools_routes",
				Help: "Number of enumerated routes per family.",
			},
			[]string{"family"},
		),
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opentools_resolutions_total",
				Help: "Total number of route resolutions.",
			},
			[]string{"family", "result"},
		),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opentools_http_requests_total",
				Help: "Total number of preview server requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "opentools_http_request_duration_seconds",
				Help:    "Duration of preview server requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		ExportFilesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opentools_export_files_total",
				Help: "Total number of files written by the static export.",
			},
			[]string{"kind"},
		),

		BuildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opentools_info",
				Help: "Build information.",
			},
			[]string{"version", "go_version"},
		),
	}

	reg.MustRegister(
		m.DatasetRecords,
		m.DatasetLoadSeconds,
		m.Routes,
		m.ResolutionsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.ExportFilesTotal,
		m.BuildInfo,
	)

	m.BuildInfo.WithLabelValues(constants.AppVersion, goVersion).Set(1)

	return m
}

// Handler returns an http.Handler serving the isolated registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// SetDatasetRecords records the size of one record kind ("tools", "articles", ...).
func (m *Metrics) SetDatasetRecords(kind string, count int) {
	if m == nil {
		return
	}
	m.DatasetRecords.WithLabelValues(kind).Set(float64(count))
}

// ObserveDatasetLoad records how long the last dataset load took.
func (m *Metrics) ObserveDatasetLoad(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DatasetLoadSeconds.Set(elapsed.Seconds())
}

// SetRoutes records the route count of one family.
func (m *Metrics) SetRoutes(family string, count int) {
	if m == nil {
		return
	}
	m.Routes.WithLabelValues(family).Set(float64(count))
}

// ObserveResolution counts one route resolution. result is "ok", "not_found" or "error".
func (m *Metrics) ObserveResolution(family, result string) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(family, result).Inc()
}

// ObserveRequest records one preview server request.
// route is the matched chi pattern, never the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// AddExportedFile counts one file written by the static export.
func (m *Metrics) AddExportedFile(kind string) {
	if m == nil {
		return
	}
	m.ExportFilesTotal.WithLabelValues(kind).Inc()
}
