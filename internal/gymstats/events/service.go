package events

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/trend"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=events_test

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
	ListAll(ctx context.Context, params EventParams) ([]Event, error)
}

type TrendParams struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

type WeightTrend struct {
	Samples []trend.Sample `json:"samples"`
	Trend   []trend.Sample `json:"trend"`
}

type Service struct {
	repo           eventsRepo
	loc            *time.Location
	metricsManager *metrics.Manager
}

func NewService(repo eventsRepo, loc *time.Location, metricsManager *metrics.Manager) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:           repo,
		loc:            loc,
		metricsManager: metricsManager,
	}
}

func (s *Service) AddWeightReport(ctx context.Context, wr WeightReport) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.add.weightreport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if wr.Weight <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWeight, wr.Weight)
	}
	if wr.Timestamp.IsZero() {
		wr.Timestamp = time.Now()
	}

	event, err := s.repo.Add(ctx, NewWeightReportEvent(wr))
	if err != nil {
		return 0, fmt.Errorf("add weight report event: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterWeightReports.Inc()
	}
	return event.ID, nil
}

// WeightSamples returns the user's weight history, one sample per day.
func (s *Service) WeightSamples(ctx context.Context, params TrendParams) (_ []trend.Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.weightsamples")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	eventType := EventTypeWeightReport
	events, err := s.repo.ListAll(ctx, EventParams{
		Type:   &eventType,
		UserID: params.UserID,
		From:   params.From,
		To:     params.To,
	})
	if err != nil {
		return nil, fmt.Errorf("list weight reports: %w", err)
	}

	samples := make([]trend.Sample, 0, len(events))
	for _, e := range events {
		sample, err := e.WeightSample()
		if err != nil {
			log.Warnf("skipping weight report: %s", err)
			continue
		}
		samples = append(samples, sample)
	}

	span.SetAttributes(attribute.Int("samples", len(samples)))
	return ConsolidateDaily(samples, s.loc), nil
}

func (s *Service) WeightTrend(ctx context.Context, params TrendParams) (_ *WeightTrend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.weighttrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	samples, err := s.WeightSamples(ctx, params)
	if err != nil {
		return nil, err
	}

	return &WeightTrend{
		Samples: samples,
		Trend:   s.smooth(samples),
	}, nil
}

// TrendOf smooths client provided samples. With consolidate unset the samples
// must already be one per day and ascending.
func (s *Service) TrendOf(samples []trend.Sample, consolidate bool) *WeightTrend {
	if consolidate {
		samples = ConsolidateDaily(samples, s.loc)
	}
	return &WeightTrend{
		Samples: samples,
		Trend:   s.smooth(samples),
	}
}

func (s *Service) smooth(samples []trend.Sample) []trend.Sample {
	if s.metricsManager != nil {
		defer func(begin time.Time) {
			s.metricsManager.HistogramEngineDuration.
				WithLabelValues("weight_trend").
				Observe(time.Since(begin).Seconds())
		}(time.Now())
	}
	return trend.Calculate(samples)
}
