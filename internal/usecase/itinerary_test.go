// internal/usecase/itinerary_test.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/internal/infrastructure/config"
	"departly/pkg/logger"
)

func testRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Sleep: func(time.Duration) {}}
}

func TestGenerateGrounded(t *testing.T) {
	gemini := &fakeGeminiRepo{text: "Day 1: Lalbagh in the morning."}
	g := NewItineraryGenerator(gemini, testRetry(), config.GroundingPolicyLabel, nil, logger.NewNop())

	rows := []entity.Attraction{
		{Name: "Lalbagh Botanical Garden", Type: "Garden", EntranceFee: 30, VisitHours: 2, BestTime: "Morning", Rating: 4.6},
	}
	res, err := g.Generate(context.Background(), "Bengaluru", 2, rows)
	require.NoError(t, err)
	require.True(t, res.Grounded)
	require.Equal(t, 1, res.SourceRows)
	require.Equal(t, "Day 1: Lalbagh in the morning.", res.Text)

	require.Len(t, gemini.prompts, 1)
	prompt := gemini.prompts[0]
	require.Contains(t, prompt, "2-day itinerary for Bengaluru")
	require.Contains(t, prompt, "Lalbagh Botanical Garden")
	require.Contains(t, prompt, "entrance fee: INR 30")
	require.Contains(t, prompt, "Never invent attractions")
}

func TestGenerateNoRowsLabelPolicy(t *testing.T) {
	gemini := &fakeGeminiRepo{text: "A best-effort plan."}
	g := NewItineraryGenerator(gemini, testRetry(), config.GroundingPolicyLabel, nil, logger.NewNop())

	res, err := g.Generate(context.Background(), "Atlantis", 3, nil)
	require.NoError(t, err)
	require.False(t, res.Grounded)
	require.Zero(t, res.SourceRows)
	require.Contains(t, gemini.prompts[0], "not grounded in our")
}

func TestGenerateNoRowsRefusePolicy(t *testing.T) {
	gemini := &fakeGeminiRepo{}
	g := NewItineraryGenerator(gemini, testRetry(), config.GroundingPolicyRefuse, nil, logger.NewNop())

	_, err := g.Generate(context.Background(), "Atlantis", 3, nil)
	require.ErrorIs(t, err, ErrNoGrounding)
	require.Zero(t, gemini.calls, "refusal must not spend model quota")
}

func TestGenerateRetriesQuotaOnly(t *testing.T) {
	quota := fmt.Errorf("%w: try later", repository.ErrQuotaExhausted)
	gemini := &fakeGeminiRepo{text: "Day 1.", errs: []error{quota, quota, nil}}
	g := NewItineraryGenerator(gemini, testRetry(), config.GroundingPolicyLabel, nil, logger.NewNop())

	rows := []entity.Attraction{{Name: "Red Fort"}}
	res, err := g.Generate(context.Background(), "Delhi", 1, rows)
	require.NoError(t, err)
	require.Equal(t, 3, gemini.calls)
	require.Equal(t, "Day 1.", res.Text)
}

func TestGenerateQuotaBudgetExhausted(t *testing.T) {
	quota := fmt.Errorf("%w: try later", repository.ErrQuotaExhausted)
	gemini := &fakeGeminiRepo{errs: []error{quota, quota, quota}}
	g := NewItineraryGenerator(gemini, testRetry(), config.GroundingPolicyLabel, nil, logger.NewNop())

	_, err := g.Generate(context.Background(), "Delhi", 1, []entity.Attraction{{Name: "Red Fort"}})
	require.ErrorIs(t, err, repository.ErrQuotaExhausted)
	require.Equal(t, 3, gemini.calls)
}

func TestGenerateHardFailureNotRetried(t *testing.T) {
	gemini := &fakeGeminiRepo{errs: []error{errors.New("invalid api key")}}
	g := NewItineraryGenerator(gemini, testRetry(), config.GroundingPolicyLabel, nil, logger.NewNop())

	_, err := g.Generate(context.Background(), "Delhi", 1, []entity.Attraction{{Name: "Red Fort"}})
	require.Error(t, err)
	require.Equal(t, 1, gemini.calls)
}

func TestGenerateRejectsNonPositiveDays(t *testing.T) {
	g := NewItineraryGenerator(&fakeGeminiRepo{}, testRetry(), config.GroundingPolicyLabel, nil, logger.NewNop())

	_, err := g.Generate(context.Background(), "Delhi", 0, nil)
	require.Error(t, err)
}
