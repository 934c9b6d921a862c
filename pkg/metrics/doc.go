// Package metrics exposes uuidgen's Prometheus metrics.
//
// Metrics:
//
//   - uuidgen_identifiers_generated_total: counter (labels: version)
//   - uuidgen_batches_generated_total: counter (labels: version, trigger)
//   - uuidgen_http_requests_total: counter (labels: method, route, status)
//   - uuidgen_http_request_duration_seconds: histogram (labels: method, route)
//   - uuidgen_active_streams: gauge of open WebSocket panels
//   - uuidgen_sessions: gauge of live browser sessions
//
// plus the standard Go runtime and process collectors.
//
// Label values are lowercase except HTTP methods. The version label uses
// "unset" for the v4 fallback; trigger is one of select, generate, api or cli.
//
// # Usage
//
//	reg := metrics.New()
//	reg.ObserveBatch("v2", "select", 5)
//	mux.Handle("GET /metrics", reg.Handler())
package metrics
