package repository

import (
	"context"
	"sync"
	"time"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
)

// MemoryJourneyRepository keeps journey summaries in process memory. It
// backs single-instance deployments that run without Redis; entries expire
// lazily on read.
type MemoryJourneyRepository struct {
	mu       sync.RWMutex
	journeys map[string]entity.JourneySummary
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryJourneyRepository creates a new in-memory journey repository
func NewMemoryJourneyRepository(ttl time.Duration) *MemoryJourneyRepository {
	return &MemoryJourneyRepository{
		journeys: make(map[string]entity.JourneySummary),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save stores a copy of the summary
func (r *MemoryJourneyRepository) Save(ctx context.Context, journey *entity.JourneySummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.journeys[journey.ID] = *journey
	return nil
}

// GetByID reads one summary back, expiring it when past its TTL
func (r *MemoryJourneyRepository) GetByID(ctx context.Context, id string) (*entity.JourneySummary, error) {
	r.mu.RLock()
	journey, ok := r.journeys[id]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrJourneyNotFound
	}

	if r.ttl > 0 && r.now().Sub(journey.CreatedAt) > r.ttl {
		r.mu.Lock()
		delete(r.journeys, id)
		r.mu.Unlock()
		return nil, repository.ErrJourneyNotFound
	}

	out := journey
	return &out, nil
}
