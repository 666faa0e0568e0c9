// internal/usecase/itinerary.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/internal/infrastructure/config"
	"departly/pkg/logger"
	"departly/pkg/metrics"
	"departly/templates"
)

// ErrNoGrounding is returned under the refuse policy when the knowledge
// base holds no rows for the requested city.
var ErrNoGrounding = errors.New("no knowledge-base rows for this city")

// ItineraryGenerator turns retrieved knowledge-base rows into a day-by-day
// plan via the generation API.
type ItineraryGenerator struct {
	geminiRepo repository.GeminiRepository
	retry      RetryPolicy
	grounding  string
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewItineraryGenerator creates a new itinerary generator
func NewItineraryGenerator(geminiRepo repository.GeminiRepository, retry RetryPolicy, grounding string, metrics *metrics.Metrics, logger logger.Logger) *ItineraryGenerator {
	return &ItineraryGenerator{
		geminiRepo: geminiRepo,
		retry:      retry,
		grounding:  grounding,
		metrics:    metrics,
		logger:     logger,
	}
}

// Generate builds the prompt for the city and calls the model under the
// retry policy. Only quota exhaustion is retried; malformed requests and
// auth failures surface immediately. With no rows the grounding policy
// decides between refusing and generating a labeled best-effort plan.
func (g *ItineraryGenerator) Generate(ctx context.Context, city string, days int, rows []entity.Attraction) (*entity.ItineraryResult, error) {
	if days < 1 {
		return nil, fmt.Errorf("days must be at least 1, got %d", days)
	}

	grounded := len(rows) > 0
	var prompt string
	if grounded {
		prompt = templates.BuildItineraryPrompt(city, days, rows)
	} else {
		if g.grounding == config.GroundingPolicyRefuse {
			g.logger.Warn("Refusing ungrounded itinerary", "city", city)
			return nil, fmt.Errorf("%w: %s", ErrNoGrounding, city)
		}
		g.logger.Warn("No knowledge rows for city, generating labeled itinerary", "city", city)
		prompt = templates.BuildUngroundedPrompt(city, days)
	}

	attempts := 0
	var text string
	err := g.retry.Do(ctx, isQuotaExhausted, func(ctx context.Context) error {
		attempts++
		if g.metrics != nil {
			g.metrics.GenerationAttempts.Inc()
			if attempts > 1 {
				g.metrics.GenerationRetries.Inc()
			}
		}
		if attempts > 1 {
			g.logger.Warn("Retrying generation after quota backoff", "city", city, "attempt", attempts)
		}

		var err error
		text, err = g.geminiRepo.GenerateContent(ctx, prompt)
		return err
	})
	if err != nil {
		if g.metrics != nil {
			g.metrics.ErrorsCount.WithLabelValues("generation").Inc()
		}
		return nil, fmt.Errorf("itinerary generation failed after %d attempts: %w", attempts, err)
	}

	g.logger.Info("Itinerary generated", "city", city, "days", days, "grounded", grounded, "attempts", attempts)
	return &entity.ItineraryResult{
		City:        city,
		Days:        days,
		Text:        text,
		Grounded:    grounded,
		SourceRows:  len(rows),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func isQuotaExhausted(err error) bool {
	return errors.Is(err, repository.ErrQuotaExhausted)
}
