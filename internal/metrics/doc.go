// Package metrics defines the Prometheus collectors of the service: HTTP
// request counts and latencies, rate limit rejections, and per-table query
// latencies and failures. Collectors register with the default registry,
// which the /metrics route exposes.
package metrics
