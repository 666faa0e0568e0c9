package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	JourneysComputed   prometheus.Counter
	FlightLookups      prometheus.Counter
	TrafficLookups     prometheus.Counter
	TrafficFallbacks   prometheus.Counter
	KnowledgeQueries   *prometheus.CounterVec
	KnowledgeRows      prometheus.Counter
	GenerationAttempts prometheus.Counter
	GenerationRetries  prometheus.Counter
	BackendLatency     *prometheus.HistogramVec
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		JourneysComputed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "journeys_computed_total",
			Help:      "The total number of journey summaries computed",
		}),
		FlightLookups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_lookups_total",
			Help:      "The total number of flight data API lookups",
		}),
		TrafficLookups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traffic_lookups_total",
			Help:      "The total number of drive-time lookups",
		}),
		TrafficFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traffic_fallbacks_total",
			Help:      "The total number of drive-time lookups answered by the fixed fallback",
		}),
		KnowledgeQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "knowledge_queries_total",
			Help:      "The total number of knowledge-base queries",
		}, []string{"backend"}),
		KnowledgeRows: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "knowledge_rows_total",
			Help:      "The total number of knowledge-base rows retrieved",
		}),
		GenerationAttempts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_attempts_total",
			Help:      "The total number of itinerary generation attempts",
		}),
		GenerationRetries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_retries_total",
			Help:      "The total number of generation retries after quota errors",
		}),
		BackendLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_latency_seconds",
			Help:      "Round-trip time per external backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend"}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
