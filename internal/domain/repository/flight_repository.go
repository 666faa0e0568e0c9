package repository

import (
	"context"

	"departly/internal/domain/entity"
)

// FlightRepository defines the interface for flight data API operations
type FlightRepository interface {
	GetByFlightIATA(ctx context.Context, flightIATA string) (*entity.FlightRecord, error)
	GetAirportMeta(ctx context.Context, airportIATA string) (*entity.AirportMeta, error)
	GetCityName(ctx context.Context, cityCode string) (string, error)
}
