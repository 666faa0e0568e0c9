package repository

import (
	"context"

	"departly/internal/domain/entity"
)

// JourneyRepository defines the interface for journey summary storage
type JourneyRepository interface {
	Save(ctx context.Context, journey *entity.JourneySummary) error
	GetByID(ctx context.Context, id string) (*entity.JourneySummary, error)
}
