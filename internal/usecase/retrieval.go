// internal/usecase/retrieval.go
package usecase

import (
	"context"
	"time"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/pkg/guard"
	"departly/pkg/logger"
	"departly/pkg/metrics"
)

// KnowledgeRetriever pulls grounding rows for a resolved city. One equality
// query per candidate name, each under its own deadline.
type KnowledgeRetriever struct {
	attractionRepo repository.AttractionRepository
	backend        string
	queryLimit     int64
	queryTimeout   time.Duration
	metrics        *metrics.Metrics
	logger         logger.Logger
}

// NewKnowledgeRetriever creates a new knowledge retriever
func NewKnowledgeRetriever(attractionRepo repository.AttractionRepository, backend string, queryLimit int, queryTimeout time.Duration, metrics *metrics.Metrics, logger logger.Logger) *KnowledgeRetriever {
	return &KnowledgeRetriever{
		attractionRepo: attractionRepo,
		backend:        backend,
		queryLimit:     int64(queryLimit),
		queryTimeout:   queryTimeout,
		metrics:        metrics,
		logger:         logger,
	}
}

// FetchForCities unions per-candidate query results in candidate order.
// A city whose query fails is logged and skipped; rows already retrieved
// always survive. Zero rows overall is a valid outcome, not an error.
func (r *KnowledgeRetriever) FetchForCities(ctx context.Context, cities []string) []entity.Attraction {
	var all []entity.Attraction
	for _, city := range cities {
		if city == "" {
			continue
		}

		if r.metrics != nil {
			r.metrics.KnowledgeQueries.WithLabelValues(r.backend).Inc()
		}

		var rows []entity.Attraction
		start := time.Now()
		err := guard.Run(ctx, r.queryTimeout, "knowledge query", func(ctx context.Context) error {
			var err error
			rows, err = r.attractionRepo.FindByCity(ctx, city, r.queryLimit)
			return err
		})
		if r.metrics != nil {
			r.metrics.BackendLatency.WithLabelValues(r.backend).Observe(time.Since(start).Seconds())
		}
		if err != nil {
			r.logger.Warn("Knowledge query failed, skipping city", "city", city, "error", err)
			if r.metrics != nil {
				r.metrics.ErrorsCount.WithLabelValues("knowledge_query").Inc()
			}
			continue
		}

		r.logger.Debug("Knowledge query answered", "city", city, "rows", len(rows))
		all = append(all, rows...)
	}

	if r.metrics != nil {
		r.metrics.KnowledgeRows.Add(float64(len(all)))
	}
	return all
}

// Probe pulls one arbitrary document under the given deadline, proving
// credentials and connectivity before the service accepts traffic.
func (r *KnowledgeRetriever) Probe(ctx context.Context, timeout time.Duration) error {
	return guard.Run(ctx, timeout, "knowledge probe", func(ctx context.Context) error {
		_, err := r.attractionRepo.FindAny(ctx)
		return err
	})
}
