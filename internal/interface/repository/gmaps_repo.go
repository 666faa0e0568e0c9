package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/pkg/logger"
)

// GoogleMapsBaseURL is the production Distance Matrix endpoint.
const GoogleMapsBaseURL = "https://maps.googleapis.com"

// GoogleMapsRepository implements TrafficRepository against the Distance
// Matrix API.
type GoogleMapsRepository struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  logger.Logger
}

// NewGoogleMapsRepository creates a new drive-time client
func NewGoogleMapsRepository(client *http.Client, baseURL, apiKey string, logger logger.Logger) repository.TrafficRepository {
	return &GoogleMapsRepository{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration *struct {
				Value int64  `json:"value"`
				Text  string `json:"text"`
			} `json:"duration"`
			DurationInTraffic *struct {
				Value int64  `json:"value"`
				Text  string `json:"text"`
			} `json:"duration_in_traffic"`
		} `json:"elements"`
	} `json:"rows"`
	ErrorMessage string `json:"error_message"`
}

// GetDriveTime returns the traffic-aware drive time from origin to
// destination. departAt in the past is sent as "now"; the API rejects
// departure times behind the clock.
func (r *GoogleMapsRepository) GetDriveTime(ctx context.Context, origin, destination string, departAt time.Time) (*entity.TrafficEstimate, error) {
	params := url.Values{
		"origins":      {origin},
		"destinations": {destination},
		"key":          {r.apiKey},
	}
	if !departAt.IsZero() && departAt.After(time.Now()) {
		params.Set("departure_time", strconv.FormatInt(departAt.Unix(), 10))
	} else {
		params.Set("departure_time", "now")
	}

	reqURL := fmt.Sprintf("%s/maps/api/distancematrix/json?%s", r.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach traffic API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("traffic API returned status %d", resp.StatusCode)
	}

	var decoded distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if decoded.Status != "OK" {
		return nil, fmt.Errorf("traffic API status %s: %s", decoded.Status, decoded.ErrorMessage)
	}
	if len(decoded.Rows) == 0 || len(decoded.Rows[0].Elements) == 0 {
		return nil, repository.ErrRouteNotFound
	}

	element := decoded.Rows[0].Elements[0]
	switch element.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return nil, repository.ErrRouteNotFound
	default:
		return nil, fmt.Errorf("traffic API element status %s", element.Status)
	}

	// duration_in_traffic needs live data; plain duration is the answer
	// when the API has none for this route.
	duration := element.DurationInTraffic
	if duration == nil {
		duration = element.Duration
	}
	if duration == nil {
		return nil, repository.ErrRouteNotFound
	}

	return &entity.TrafficEstimate{
		Seconds: duration.Value,
		Text:    duration.Text,
	}, nil
}
