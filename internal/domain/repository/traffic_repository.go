package repository

import (
	"context"
	"time"

	"departly/internal/domain/entity"
)

// TrafficRepository defines the interface for drive-time lookups
type TrafficRepository interface {
	GetDriveTime(ctx context.Context, origin, destination string, departAt time.Time) (*entity.TrafficEstimate, error)
}
