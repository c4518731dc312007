// Package metrics provides observability hooks for catalog construction.
//
// Components receive a Recorder through dependency injection and default to NoopRecorder, so
// callers never nil-check. PrometheusRecorder registers its collectors on a caller-supplied
// registry; the CLI writes that registry to a node-exporter textfile after a build.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	cat := catalog.New(publish.StyleDefault, catalog.WithRecorder(rec))
//	...
//	_ = metrics.WriteTextfile("doccatalog.prom", reg)
package metrics
