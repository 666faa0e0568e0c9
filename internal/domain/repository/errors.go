package repository

import "errors"

// Sentinel errors shared by repository implementations, so callers can
// branch on the miss instead of parsing driver errors.
var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrRouteNotFound   = errors.New("route not found")
	ErrCityNotFound    = errors.New("city not found")
	ErrAirportNotFound = errors.New("airport not found")
	ErrJourneyNotFound = errors.New("journey not found")
	ErrQuotaExhausted  = errors.New("generation quota exhausted")
)
