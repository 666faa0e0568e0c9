package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
)

// RedisJourneyRepository stores journey summaries as TTL'd JSON blobs.
type RedisJourneyRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisJourneyRepository creates a new Redis journey repository
func NewRedisJourneyRepository(client *redis.Client, ttl time.Duration) repository.JourneyRepository {
	return &RedisJourneyRepository{
		client: client,
		ttl:    ttl,
	}
}

// Save writes the summary, refreshing its TTL
func (r *RedisJourneyRepository) Save(ctx context.Context, journey *entity.JourneySummary) error {
	payload, err := json.Marshal(journey)
	if err != nil {
		return fmt.Errorf("failed to marshal journey: %w", err)
	}
	return r.client.Set(ctx, journeyKey(journey.ID), payload, r.ttl).Err()
}

// GetByID reads one summary back
func (r *RedisJourneyRepository) GetByID(ctx context.Context, id string) (*entity.JourneySummary, error) {
	data, err := r.client.Get(ctx, journeyKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, repository.ErrJourneyNotFound
		}
		return nil, err
	}

	var journey entity.JourneySummary
	if err := json.Unmarshal(data, &journey); err != nil {
		return nil, fmt.Errorf("failed to unmarshal journey: %w", err)
	}
	return &journey, nil
}

func journeyKey(id string) string {
	return "journey:" + id
}
