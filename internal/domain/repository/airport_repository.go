package repository

import (
	"context"

	"departly/internal/domain/entity"
)

// AirportRepository defines the interface for airport directory lookups
type AirportRepository interface {
	GetByAirportCode(ctx context.Context, code string) (*entity.Airport, error)
}
