package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/pkg/logger"
)

// AviationStackBaseURL is the production flight data endpoint.
const AviationStackBaseURL = "https://api.aviationstack.com"

// AviationStackRepository implements FlightRepository against the
// AviationStack REST API.
type AviationStackRepository struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  logger.Logger
}

// NewAviationStackRepository creates a new flight data API client
func NewAviationStackRepository(client *http.Client, baseURL, apiKey string, logger logger.Logger) repository.FlightRepository {
	return &AviationStackRepository{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

type flightResponse struct {
	Data []struct {
		FlightDate   string `json:"flight_date"`
		FlightStatus string `json:"flight_status"`
		Departure    struct {
			Airport   string `json:"airport"`
			IATA      string `json:"iata"`
			Timezone  string `json:"timezone"`
			Scheduled string `json:"scheduled"`
		} `json:"departure"`
		Arrival struct {
			Airport   string `json:"airport"`
			IATA      string `json:"iata"`
			Timezone  string `json:"timezone"`
			Scheduled string `json:"scheduled"`
		} `json:"arrival"`
		Airline struct {
			Name string `json:"name"`
		} `json:"airline"`
		Flight struct {
			Number string `json:"number"`
			IATA   string `json:"iata"`
		} `json:"flight"`
	} `json:"data"`
}

// GetByFlightIATA looks up the next scheduled flight for a flight code
func (r *AviationStackRepository) GetByFlightIATA(ctx context.Context, flightIATA string) (*entity.FlightRecord, error) {
	var decoded flightResponse
	if err := r.get(ctx, "/v1/flights", url.Values{"flight_iata": {flightIATA}}, &decoded); err != nil {
		return nil, err
	}
	if len(decoded.Data) == 0 {
		return nil, repository.ErrFlightNotFound
	}

	flight := decoded.Data[0]

	scheduledOut, err := localizeSchedule(flight.Departure.Scheduled, flight.Departure.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to parse departure time: %w", err)
	}
	scheduledIn, err := localizeSchedule(flight.Arrival.Scheduled, flight.Arrival.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to parse arrival time: %w", err)
	}

	return &entity.FlightRecord{
		FlightIATA:       flight.Flight.IATA,
		FlightNumber:     flight.Flight.Number,
		AirlineName:      flight.Airline.Name,
		Status:           flight.FlightStatus,
		DepartureAirport: flight.Departure.Airport,
		DepartureIATA:    flight.Departure.IATA,
		DepartureZone:    flight.Departure.Timezone,
		ScheduledOut:     scheduledOut,
		ArrivalAirport:   flight.Arrival.Airport,
		ArrivalIATA:      flight.Arrival.IATA,
		ArrivalZone:      flight.Arrival.Timezone,
		ScheduledIn:      scheduledIn,
	}, nil
}

// GetAirportMeta looks up airport metadata by IATA code
func (r *AviationStackRepository) GetAirportMeta(ctx context.Context, airportIATA string) (*entity.AirportMeta, error) {
	var decoded struct {
		Data []struct {
			AirportName  string `json:"airport_name"`
			IATACode     string `json:"iata_code"`
			CityIATACode string `json:"city_iata_code"`
			Timezone     string `json:"timezone"`
		} `json:"data"`
	}
	if err := r.get(ctx, "/v1/airports", url.Values{"iata_code": {airportIATA}}, &decoded); err != nil {
		return nil, err
	}
	if len(decoded.Data) == 0 {
		return nil, repository.ErrAirportNotFound
	}

	airport := decoded.Data[0]
	return &entity.AirportMeta{
		AirportName: airport.AirportName,
		IATACode:    airport.IATACode,
		CityCode:    airport.CityIATACode,
		TzName:      airport.Timezone,
	}, nil
}

// GetCityName looks up the display city name for a city IATA code
func (r *AviationStackRepository) GetCityName(ctx context.Context, cityCode string) (string, error) {
	var decoded struct {
		Data []struct {
			CityName string `json:"city_name"`
		} `json:"data"`
	}
	if err := r.get(ctx, "/v1/cities", url.Values{"iata_code": {cityCode}}, &decoded); err != nil {
		return "", err
	}
	if len(decoded.Data) == 0 || decoded.Data[0].CityName == "" {
		return "", repository.ErrCityNotFound
	}
	return decoded.Data[0].CityName, nil
}

func (r *AviationStackRepository) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("access_key", r.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", r.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach flight data API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("flight data API returned status %d: %v", resp.StatusCode, errorBody)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// localizeSchedule rebuilds a scheduled timestamp as wall-clock time in the
// airport's zone. The API writes local wall time with a +00:00 offset, so
// trusting the offset would shift every non-UTC airport by hours.
func localizeSchedule(stamp, zone string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, err
	}
	if zone == "" {
		return t, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return t, nil
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}
