package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"departly/internal/domain/repository"
)

func TestStaticAirportLookup(t *testing.T) {
	repo := NewStaticAirportRepository()
	ctx := context.Background()

	airport, err := repo.GetByAirportCode(ctx, "BLR")
	require.NoError(t, err)
	require.Equal(t, "Bengaluru", airport.CityName)
	require.Equal(t, "Asia/Kolkata", airport.TzName)

	// Lookup is case and whitespace tolerant.
	airport, err = repo.GetByAirportCode(ctx, " blr ")
	require.NoError(t, err)
	require.Equal(t, "Bengaluru", airport.CityName)
}

func TestStaticAirportMiss(t *testing.T) {
	repo := NewStaticAirportRepository()
	_, err := repo.GetByAirportCode(context.Background(), "ZZZ")
	require.ErrorIs(t, err, repository.ErrAirportNotFound)
}
