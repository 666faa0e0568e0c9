// internal/domain/entity/journey.go
package entity

import (
	"time"
)

// CreateJourneyRequest is the journey intake payload.
type CreateJourneyRequest struct {
	FlightIATA    string `json:"flightIata" binding:"required"`
	PickupAddress string `json:"pickupAddress" binding:"required"`
}

// ItineraryRequest asks for a day-by-day plan for a stored journey.
type ItineraryRequest struct {
	Days         int    `json:"days" binding:"required,min=1,max=7"`
	CityOverride string `json:"cityOverride,omitempty"`
}

// ItineraryResult is one generated plan plus its grounding provenance.
type ItineraryResult struct {
	City        string    `json:"city"`
	Days        int       `json:"days"`
	Text        string    `json:"text"`
	Grounded    bool      `json:"grounded"`
	SourceRows  int       `json:"sourceRows"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// JourneySummary is the stored outcome of one departure computation. It is
// persisted before itinerary generation runs, so a later generation failure
// cannot erase it.
type JourneySummary struct {
	ID               string           `json:"id"`
	FlightIATA       string           `json:"flightIata"`
	AirlineName      string           `json:"airlineName"`
	PickupAddress    string           `json:"pickupAddress"`
	Origin           string           `json:"origin"`
	Destination      string           `json:"destination"`
	TakeoffLocal     time.Time        `json:"takeoffLocal"`
	LandingLocal     time.Time        `json:"landingLocal"`
	LeaveBy          time.Time        `json:"leaveBy"`
	LeaveByText      string           `json:"leaveByText"`
	TrafficSeconds   int64            `json:"trafficSeconds"`
	TrafficText      string           `json:"trafficText"`
	TrafficEstimated bool             `json:"trafficEstimated"`
	Resolution       CityResolution   `json:"resolution"`
	Itinerary        *ItineraryResult `json:"itinerary,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}
