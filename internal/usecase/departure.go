// internal/usecase/departure.go
package usecase

import (
	"context"
	"fmt"
	"time"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/internal/infrastructure/config"
	"departly/pkg/logger"
	"departly/pkg/metrics"
	"departly/pkg/utils"
)

// DeparturePolicy carries the named buffers and the traffic-unavailable
// behavior for leave-by computation.
type DeparturePolicy struct {
	BoardingLead    time.Duration
	SecurityBuffer  time.Duration
	QueueBuffer     time.Duration
	TrafficPolicy   string
	TrafficFallback time.Duration
}

// PolicyFromConfig copies the departure knobs out of the loaded config.
func PolicyFromConfig(cfg *config.Config) DeparturePolicy {
	return DeparturePolicy{
		BoardingLead:    cfg.BoardingLead,
		SecurityBuffer:  cfg.SecurityBuffer,
		QueueBuffer:     cfg.QueueBuffer,
		TrafficPolicy:   cfg.TrafficPolicy,
		TrafficFallback: cfg.TrafficFallback,
	}
}

// DepartureCalculator computes when to leave home for a flight.
type DepartureCalculator struct {
	trafficRepo repository.TrafficRepository
	policy      DeparturePolicy
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewDepartureCalculator creates a new departure calculator
func NewDepartureCalculator(trafficRepo repository.TrafficRepository, policy DeparturePolicy, metrics *metrics.Metrics, logger logger.Logger) *DepartureCalculator {
	return &DepartureCalculator{
		trafficRepo: trafficRepo,
		policy:      policy,
		metrics:     metrics,
		logger:      logger,
	}
}

// ComputeLeaveBy looks up the drive time and applies the departure
// arithmetic. When the traffic API cannot answer, the configured policy
// decides between failing and substituting the fixed fallback, which is
// always labeled estimated.
func (c *DepartureCalculator) ComputeLeaveBy(ctx context.Context, takeoff time.Time, pickup, airport string) (time.Time, *entity.TrafficEstimate, error) {
	if c.metrics != nil {
		c.metrics.TrafficLookups.Inc()
	}

	traffic, err := c.trafficRepo.GetDriveTime(ctx, pickup, airport, time.Time{})
	if err != nil {
		if c.policy.TrafficPolicy != config.TrafficPolicyEstimate {
			return time.Time{}, nil, fmt.Errorf("traffic lookup failed: %w", err)
		}

		c.logger.Warn("Traffic unavailable, using fixed fallback", "fallback", c.policy.TrafficFallback, "error", err)
		if c.metrics != nil {
			c.metrics.TrafficFallbacks.Inc()
		}
		traffic = &entity.TrafficEstimate{
			Seconds:   int64(c.policy.TrafficFallback / time.Second),
			Text:      utils.FormatDuration(c.policy.TrafficFallback) + " (assumed)",
			Estimated: true,
		}
	}

	leaveBy := LeaveBy(takeoff, traffic.Seconds, c.policy)
	c.logger.Info("Computed leave-by time",
		"takeoff", takeoff.Format(time.RFC3339),
		"trafficSeconds", traffic.Seconds,
		"leaveBy", leaveBy.Format(time.RFC3339),
		"estimated", traffic.Estimated)
	return leaveBy, traffic, nil
}

// LeaveBy is the departure arithmetic: takeoff minus boarding lead, minus
// drive time plus the security and queue buffers. More traffic always means
// leaving earlier.
func LeaveBy(takeoff time.Time, trafficSeconds int64, p DeparturePolicy) time.Time {
	travel := time.Duration(trafficSeconds)*time.Second + p.SecurityBuffer + p.QueueBuffer
	return takeoff.Add(-p.BoardingLead).Add(-travel)
}
