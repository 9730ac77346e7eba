// Package metrics concentra las métricas Prometheus del servicio.
// Se registran en el registry default vía promauto y se exponen en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vetclinic"

// HTTPRequestsTotal cuenta requests por método, patrón de ruta chi y status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, route pattern and status code.",
	},
	[]string{"method", "route", "status"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// MutationsTotal cuenta create/update/delete por entidad.
// result: ok | invalid | not_found | error
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Entity mutations by entity, operation and result.",
	},
	[]string{"entity", "op", "result"},
)

// CascadeDeletedTotal cuenta filas borradas en cascada por entidad.
var CascadeDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deleted_rows_total",
		Help:      "Rows removed by cascading deletes, by entity.",
	},
	[]string{"entity"},
)

var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected by the per-IP rate limiter.",
	},
)

func RecordMutation(entity, op, result string) {
	MutationsTotal.WithLabelValues(entity, op, result).Inc()
}

// RecordCascade suma los conteos > 0 (clave = entidad).
func RecordCascade(counts map[string]int) {
	for entity, n := range counts {
		if n > 0 {
			CascadeDeletedTotal.WithLabelValues(entity).Add(float64(n))
		}
	}
}
