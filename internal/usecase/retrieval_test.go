// internal/usecase/retrieval_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"departly/internal/domain/entity"
	"departly/pkg/guard"
	"departly/pkg/logger"
)

func attractions(names ...string) []entity.Attraction {
	out := make([]entity.Attraction, 0, len(names))
	for _, n := range names {
		out = append(out, entity.Attraction{Name: n})
	}
	return out
}

func TestFetchForCitiesUnionKeepsOrderAndDuplicates(t *testing.T) {
	repo := &fakeAttractionRepo{byCity: map[string][]entity.Attraction{
		"Bengaluru": attractions("Lalbagh", "Cubbon Park"),
		"Bangalore": attractions("Lalbagh", "Bangalore Palace"),
	}}
	r := NewKnowledgeRetriever(repo, "firestore", 10, time.Second, nil, logger.NewNop())

	got := r.FetchForCities(context.Background(), []string{"Bengaluru", "Bangalore"})
	require.Equal(t, []string{"Bengaluru", "Bangalore"}, repo.queries)

	names := make([]string, 0, len(got))
	for _, a := range got {
		names = append(names, a.Name)
	}
	require.Equal(t, []string{"Lalbagh", "Cubbon Park", "Lalbagh", "Bangalore Palace"}, names)
}

func TestFetchForCitiesSkipsFailedCity(t *testing.T) {
	repo := &fakeAttractionRepo{
		byCity:  map[string][]entity.Attraction{"Delhi": attractions("Red Fort")},
		errCity: map[string]error{"New Delhi": errors.New("backend down")},
	}
	r := NewKnowledgeRetriever(repo, "mongo", 10, time.Second, nil, logger.NewNop())

	got := r.FetchForCities(context.Background(), []string{"New Delhi", "Delhi"})
	require.Len(t, got, 1)
	require.Equal(t, "Red Fort", got[0].Name)
}

func TestFetchForCitiesSkipsEmptyCandidate(t *testing.T) {
	repo := &fakeAttractionRepo{}
	r := NewKnowledgeRetriever(repo, "mongo", 10, time.Second, nil, logger.NewNop())

	got := r.FetchForCities(context.Background(), []string{"", "Goa"})
	require.Empty(t, got)
	require.Equal(t, []string{"Goa"}, repo.queries)
}

func TestFetchForCitiesZeroRowsIsNotAnError(t *testing.T) {
	repo := &fakeAttractionRepo{}
	r := NewKnowledgeRetriever(repo, "firestore", 10, time.Second, nil, logger.NewNop())

	got := r.FetchForCities(context.Background(), []string{"Atlantis"})
	require.Empty(t, got)
}

func TestProbe(t *testing.T) {
	repo := &fakeAttractionRepo{any: &entity.Attraction{Name: "Gateway of India"}}
	r := NewKnowledgeRetriever(repo, "firestore", 10, time.Second, nil, logger.NewNop())

	require.NoError(t, r.Probe(context.Background(), time.Second))
}

func TestProbeDeadline(t *testing.T) {
	repo := &fakeAttractionRepo{delay: 200 * time.Millisecond}
	r := NewKnowledgeRetriever(repo, "firestore", 10, time.Second, nil, logger.NewNop())

	err := r.Probe(context.Background(), 20*time.Millisecond)
	require.ErrorIs(t, err, guard.ErrDeadline)
}
