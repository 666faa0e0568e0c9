// internal/domain/entity/flight.go
package entity

import (
	"time"
)

// FlightRecord is one scheduled flight as reported by the flight data API.
// Scheduled times carry the airport-local zone resolved at decode time.
type FlightRecord struct {
	FlightIATA       string
	FlightNumber     string
	AirlineName      string
	Status           string
	DepartureAirport string
	DepartureIATA    string
	DepartureZone    string
	ScheduledOut     time.Time
	ArrivalAirport   string
	ArrivalIATA      string
	ArrivalZone      string
	ScheduledIn      time.Time
}
