// internal/usecase/planner.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/pkg/logger"
	"departly/pkg/metrics"
	"departly/pkg/utils"
)

// ErrCityUnresolved is returned when no resolution tier produced a city and
// the caller supplied no manual override.
var ErrCityUnresolved = errors.New("destination city could not be resolved")

// JourneyPlanner orchestrates one journey: flight lookup, leave-by
// computation, city resolution, storage, and on request the itinerary.
type JourneyPlanner struct {
	flightRepo  repository.FlightRepository
	journeyRepo repository.JourneyRepository
	calculator  *DepartureCalculator
	resolver    *CityResolver
	retriever   *KnowledgeRetriever
	generator   *ItineraryGenerator
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewJourneyPlanner creates a new journey planner
func NewJourneyPlanner(
	flightRepo repository.FlightRepository,
	journeyRepo repository.JourneyRepository,
	calculator *DepartureCalculator,
	resolver *CityResolver,
	retriever *KnowledgeRetriever,
	generator *ItineraryGenerator,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *JourneyPlanner {
	return &JourneyPlanner{
		flightRepo:  flightRepo,
		journeyRepo: journeyRepo,
		calculator:  calculator,
		resolver:    resolver,
		retriever:   retriever,
		generator:   generator,
		metrics:     metrics,
		logger:      logger,
	}
}

// PlanJourney looks up the flight, computes the leave-by time, resolves the
// destination city, and stores the summary. The summary is persisted before
// any itinerary work so later failures cannot erase it.
func (p *JourneyPlanner) PlanJourney(ctx context.Context, req *entity.CreateJourneyRequest) (*entity.JourneySummary, error) {
	flightIATA := utils.NormalizeIATA(req.FlightIATA)
	if flightIATA == "" {
		return nil, fmt.Errorf("flight IATA is required")
	}

	if p.metrics != nil {
		p.metrics.FlightLookups.Inc()
	}
	flight, err := p.flightRepo.GetByFlightIATA(ctx, flightIATA)
	if err != nil {
		return nil, fmt.Errorf("flight lookup failed for %s: %w", flightIATA, err)
	}
	p.logger.Info("Flight schedule found",
		"flight", flightIATA,
		"airline", flight.AirlineName,
		"departure", flight.DepartureIATA,
		"arrival", flight.ArrivalIATA,
		"takeoff", flight.ScheduledOut.Format(time.RFC3339))

	driveTarget := flight.DepartureAirport
	if driveTarget == "" {
		driveTarget = flight.DepartureIATA + " airport"
	}
	leaveBy, traffic, err := p.calculator.ComputeLeaveBy(ctx, flight.ScheduledOut, req.PickupAddress, driveTarget)
	if err != nil {
		return nil, err
	}

	resolution := p.resolver.Resolve(ctx, flight.ArrivalIATA)
	if resolution.Unresolved() {
		p.logger.Warn("Destination city unresolved, manual override available", "airport", flight.ArrivalIATA)
	}

	summary := &entity.JourneySummary{
		ID:               uuid.NewString(),
		FlightIATA:       flight.FlightIATA,
		AirlineName:      flight.AirlineName,
		PickupAddress:    req.PickupAddress,
		Origin:           flight.DepartureIATA,
		Destination:      flight.ArrivalIATA,
		TakeoffLocal:     flight.ScheduledOut,
		LandingLocal:     flight.ScheduledIn,
		LeaveBy:          leaveBy,
		LeaveByText:      utils.FormatClock(leaveBy),
		TrafficSeconds:   traffic.Seconds,
		TrafficText:      traffic.Text,
		TrafficEstimated: traffic.Estimated,
		Resolution:       resolution,
		CreatedAt:        time.Now().UTC(),
	}
	if err := p.journeyRepo.Save(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to store journey: %w", err)
	}

	if p.metrics != nil {
		p.metrics.JourneysComputed.Inc()
	}
	p.logger.Info("Journey stored",
		"journeyId", summary.ID,
		"leaveBy", leaveBy.Format(time.RFC3339),
		"citySource", resolution.Source)
	return summary, nil
}

// GetJourney returns a stored journey summary.
func (p *JourneyPlanner) GetJourney(ctx context.Context, id string) (*entity.JourneySummary, error) {
	return p.journeyRepo.GetByID(ctx, id)
}

// ItineraryForJourney generates a plan for a stored journey's destination.
// A manual city override replaces the stored resolution. The journey is
// re-stored only after generation succeeds, so a failed attempt leaves any
// earlier itinerary in place.
func (p *JourneyPlanner) ItineraryForJourney(ctx context.Context, id string, req *entity.ItineraryRequest) (*entity.JourneySummary, error) {
	journey, err := p.journeyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolution := journey.Resolution
	if req.CityOverride != "" {
		resolution = p.resolver.ResolveManual(resolution.AirportCode, req.CityOverride)
		p.logger.Info("Manual city override applied", "journeyId", id, "city", req.CityOverride)
	}
	if resolution.Unresolved() {
		return nil, fmt.Errorf("%w: airport %s", ErrCityUnresolved, journey.Destination)
	}

	rows := p.retriever.FetchForCities(ctx, resolution.Candidates)
	result, err := p.generator.Generate(ctx, resolution.DisplayName(), req.Days, rows)
	if err != nil {
		return nil, err
	}

	journey.Resolution = resolution
	journey.Itinerary = result
	if err := p.journeyRepo.Save(ctx, journey); err != nil {
		return nil, fmt.Errorf("failed to store itinerary: %w", err)
	}
	return journey, nil
}

// ManualCityChoices returns the city list used for manual overrides.
func (p *JourneyPlanner) ManualCityChoices() []string {
	return p.resolver.ManualCities()
}
