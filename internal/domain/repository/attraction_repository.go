package repository

import (
	"context"

	"departly/internal/domain/entity"
)

// AttractionRepository defines the interface for knowledge-base reads
type AttractionRepository interface {
	// FindByCity returns up to limit attractions whose City field equals
	// city exactly. An empty result is not an error.
	FindByCity(ctx context.Context, city string, limit int64) ([]entity.Attraction, error)
	// FindAny returns one arbitrary document, or nil when the collection
	// is empty. Used by the startup connectivity probe.
	FindAny(ctx context.Context) (*entity.Attraction, error)
}
