// internal/interface/rest/journey_handler.go
package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/internal/usecase"
	"departly/pkg/guard"
	"departly/pkg/logger"
)

// Planner is the journey surface the HTTP layer consumes.
type Planner interface {
	PlanJourney(ctx context.Context, req *entity.CreateJourneyRequest) (*entity.JourneySummary, error)
	GetJourney(ctx context.Context, id string) (*entity.JourneySummary, error)
	ItineraryForJourney(ctx context.Context, id string, req *entity.ItineraryRequest) (*entity.JourneySummary, error)
	ManualCityChoices() []string
}

// JourneyHandler exposes journey planning over HTTP.
type JourneyHandler struct {
	planner Planner
	logger  logger.Logger
}

// NewJourneyHandler creates a new journey handler
func NewJourneyHandler(planner Planner, logger logger.Logger) *JourneyHandler {
	return &JourneyHandler{planner: planner, logger: logger}
}

// Register mounts the journey routes on the given group.
func (h *JourneyHandler) Register(api *gin.RouterGroup) {
	api.POST("/journeys", h.create)
	api.GET("/journeys/:id", h.get)
	api.POST("/journeys/:id/itinerary", h.itinerary)
	api.GET("/cities", h.cities)
}

func (h *JourneyHandler) create(c *gin.Context) {
	var req entity.CreateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.planner.PlanJourney(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

func (h *JourneyHandler) get(c *gin.Context) {
	summary, err := h.planner.GetJourney(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *JourneyHandler) itinerary(c *gin.Context) {
	var req entity.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.planner.ItineraryForJourney(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *JourneyHandler) cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.planner.ManualCityChoices()})
}

// respondError maps domain errors onto HTTP statuses. Recoverable misses
// get specific user-facing messages; anything unexpected collapses to a
// 500 without leaking internals.
func (h *JourneyHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule found for that flight, check the IATA code"})
	case errors.Is(err, repository.ErrJourneyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "journey not found or expired"})
	case errors.Is(err, repository.ErrRouteNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no driving route between the pickup address and the airport"})
	case errors.Is(err, usecase.ErrCityUnresolved):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "destination city could not be resolved, pick one manually",
			"cities": h.planner.ManualCityChoices(),
		})
	case errors.Is(err, usecase.ErrNoGrounding):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no attraction records for this city in the knowledge base"})
	case errors.Is(err, repository.ErrQuotaExhausted):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "generation quota exhausted, try again shortly"})
	case errors.Is(err, guard.ErrDeadline):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "a backend did not answer in time"})
	default:
		h.logger.Error("Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
