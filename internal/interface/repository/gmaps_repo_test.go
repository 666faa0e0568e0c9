package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"departly/internal/domain/repository"
	"departly/pkg/logger"
)

func TestGetDriveTimeWithTraffic(t *testing.T) {
	var gotOrigin, gotDest, gotDepart string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOrigin = r.URL.Query().Get("origins")
		gotDest = r.URL.Query().Get("destinations")
		gotDepart = r.URL.Query().Get("departure_time")
		w.Write([]byte(`{
  "status": "OK",
  "rows": [{"elements": [{
    "status": "OK",
    "duration": {"value": 1500, "text": "25 mins"},
    "duration_in_traffic": {"value": 1800, "text": "30 mins"}
  }]}]
}`))
	}))
	defer srv.Close()

	repo := NewGoogleMapsRepository(srv.Client(), srv.URL, "maps-key", logger.NewNop())
	est, err := repo.GetDriveTime(context.Background(), "Koramangala, Bengaluru", "BLR airport", time.Time{})
	require.NoError(t, err)
	require.Equal(t, "Koramangala, Bengaluru", gotOrigin)
	require.Equal(t, "BLR airport", gotDest)
	require.Equal(t, "now", gotDepart)
	require.Equal(t, int64(1800), est.Seconds)
	require.Equal(t, "30 mins", est.Text)
	require.False(t, est.Estimated)
}

func TestGetDriveTimeFallsBackToPlainDuration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
  "status": "OK",
  "rows": [{"elements": [{
    "status": "OK",
    "duration": {"value": 1500, "text": "25 mins"}
  }]}]
}`))
	}))
	defer srv.Close()

	repo := NewGoogleMapsRepository(srv.Client(), srv.URL, "maps-key", logger.NewNop())
	est, err := repo.GetDriveTime(context.Background(), "a", "b", time.Time{})
	require.NoError(t, err)
	require.Equal(t, int64(1500), est.Seconds)
}

func TestGetDriveTimeRouteMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "rows": [{"elements": [{"status": "ZERO_RESULTS"}]}]}`))
	}))
	defer srv.Close()

	repo := NewGoogleMapsRepository(srv.Client(), srv.URL, "maps-key", logger.NewNop())
	_, err := repo.GetDriveTime(context.Background(), "Atlantis", "BLR airport", time.Time{})
	require.ErrorIs(t, err, repository.ErrRouteNotFound)
}

func TestGetDriveTimeAPIDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid", "rows": []}`))
	}))
	defer srv.Close()

	repo := NewGoogleMapsRepository(srv.Client(), srv.URL, "bad-key", logger.NewNop())
	_, err := repo.GetDriveTime(context.Background(), "a", "b", time.Time{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestGetDriveTimeFutureDeparture(t *testing.T) {
	var gotDepart string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDepart = r.URL.Query().Get("departure_time")
		w.Write([]byte(`{"status": "OK", "rows": [{"elements": [{"status": "OK", "duration_in_traffic": {"value": 900, "text": "15 mins"}}]}]}`))
	}))
	defer srv.Close()

	repo := NewGoogleMapsRepository(srv.Client(), srv.URL, "maps-key", logger.NewNop())
	departAt := time.Now().Add(6 * time.Hour)
	_, err := repo.GetDriveTime(context.Background(), "a", "b", departAt)
	require.NoError(t, err)
	require.NotEqual(t, "now", gotDepart)
	require.NotEmpty(t, gotDepart)
}
